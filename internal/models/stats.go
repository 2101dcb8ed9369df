package models

// Периоды агрегации статистики
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// PopularTeam - частота команды в ставках за период
type PopularTeam struct {
	TeamName string `json:"teamName"`
	Count    int    `json:"count"`
	Period   string `json:"period"`
}

// PopularBetType - частота типа ставки за период
type PopularBetType struct {
	Type   string `json:"type"`
	Count  int    `json:"count"`
	Period string `json:"period"`
}

// UserPerformance - сводная статистика по пользователю для администратора
type UserPerformance struct {
	UserID    string  `json:"userId"`
	Username  string  `json:"username"`
	TotalBets int     `json:"totalBets"`
	GreenBets int     `json:"greenBets"`
	RedBets   int     `json:"redBets"`
	WinRate   float64 `json:"winRate"`
	Profit    float64 `json:"profit"`
}

// AdminStats - агрегированная статистика по всем пользователям
type AdminStats struct {
	TotalUsers      int               `json:"totalUsers"`
	TotalBets       int               `json:"totalBets"`
	TotalProfit     float64           `json:"totalProfit"`
	WinRate         float64           `json:"winRate"`
	PopularTeams    []PopularTeam     `json:"popularTeams"`
	PopularBetTypes []PopularBetType  `json:"popularBetTypes"`
	UserPerformance []UserPerformance `json:"userPerformance"`
}
