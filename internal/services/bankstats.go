package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/storage"
)

// Количество команд/типов ставок в топе за период
const TopSize = 5

type StatsService interface {
	GetBankState(ctx context.Context, userID string) (*models.BankState, *models.BankrollData, error)
	UpdateBankSettings(ctx context.Context, userID string, request models.BankSettingsRequest) (*models.BankrollData, error)
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
}

type Stats struct {
	Users     storage.UsersStorage
	Bankrolls storage.BankrollsStorage
	Bets      storage.BetsStorage
}

// Создание сервиса
func NewStats(users storage.UsersStorage, bankrolls storage.BankrollsStorage, bets storage.BetsStorage) StatsService {
	return &Stats{Users: users, Bankrolls: bankrolls, Bets: bets}
}

// GetBankState - расчёт состояния банка пользователя по истории ставок
func (s *Stats) GetBankState(ctx context.Context, userID string) (*models.BankState, *models.BankrollData, error) {
	bankroll, err := s.Bankrolls.GetBankroll(ctx, userID)
	if err != nil {
		logger.Error("Failed to get bankroll", err)
		return nil, nil, err
	}
	bets, err := s.Bets.GetUserBets(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user bets", err)
		return nil, nil, err
	}
	state := ComputeBankState(bets, bankroll.Settings())
	return &state, bankroll, nil
}

// UpdateBankSettings - обновление настроек риска банка пользователя
func (s *Stats) UpdateBankSettings(ctx context.Context, userID string, request models.BankSettingsRequest) (*models.BankrollData, error) {
	bankroll, err := s.Bankrolls.UpdateSettings(ctx, userID,
		decimal.NewFromFloat(request.InitialAmount),
		decimal.NewFromFloat(request.DailyRiskPercent),
		decimal.NewFromFloat(request.ReturnMultiplier))
	if err != nil {
		logger.Error("Failed to update bank settings", err)
		return nil, err
	}
	logger.Info("Bank settings updated", userID)
	return bankroll, nil
}

// GetAdminStats - агрегированная статистика по всем пользователям и ставкам
func (s *Stats) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	users, err := s.Users.GetUsers(ctx)
	if err != nil {
		logger.Error("Failed to get users", err)
		return nil, err
	}
	bets, err := s.Bets.GetAllBets(ctx)
	if err != nil {
		logger.Error("Failed to get bets", err)
		return nil, err
	}
	stats := ComputeAdminStats(bets, users, time.Now())
	return &stats, nil
}

// ComputeBankState - чистый расчёт метрик банка по истории ставок и настройкам.
// Порядок входных данных не важен - история пересортировывается по дате создания.
// Текущий банк - снимок после последней рассчитанной ставки,
// при отсутствии таковых - начальная сумма
func ComputeBankState(bets []models.BetData, settings models.BankSettings) models.BankState {
	sorted := make([]models.BetData, len(bets))
	copy(sorted, bets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	currentBank := settings.InitialValue
	var wins, settled int
	for _, bet := range sorted {
		if bet.Status != models.BetStatusSettled {
			continue
		}
		settled++
		if bet.Result == models.BetResultWin {
			wins++
		}
		currentBank = bet.BankAfterBet
	}

	percent := decimal.NewFromInt(100)
	suggested := currentBank.Mul(settings.DailyPercentageRisk).Div(percent).Round(2)
	expected := suggested.Mul(settings.ExpectedReturnMultiplier).Round(2)
	totalProfit := currentBank.Sub(settings.InitialValue)

	var winRate float64
	if settled > 0 {
		winRate = float64(wins) / float64(settled) * 100
	}

	var growthRate float64
	if settings.InitialValue.IsPositive() {
		growthRate, _ = currentBank.Div(settings.InitialValue).
			Sub(decimal.NewFromInt(1)).Mul(percent).Float64()
	}

	return models.BankState{
		CurrentBank:        currentBank,
		SuggestedBetAmount: suggested,
		ExpectedProfit:     expected,
		TotalProfit:        totalProfit,
		TotalBets:          settled,
		WinRate:            winRate,
		BankGrowthRate:     growthRate,
	}
}

// ComputeAdminStats - чистый расчёт агрегированной статистики.
// Момент времени передаётся снаружи: границы периодов должны быть воспроизводимы
func ComputeAdminStats(bets []models.BetData, users []models.UserData, now time.Time) models.AdminStats {
	periods := []struct {
		Name  string
		Since time.Time
	}{
		{models.PeriodDay, now.Add(-24 * time.Hour)},
		{models.PeriodWeek, now.Add(-7 * 24 * time.Hour)},
		{models.PeriodMonth, now.Add(-30 * 24 * time.Hour)},
		{models.PeriodAll, time.Time{}},
	}

	var popularTeams []models.PopularTeam
	var popularTypes []models.PopularBetType
	for _, period := range periods {
		teams := make(map[string]int)
		types := make(map[string]int)
		for _, bet := range bets {
			if !period.Since.IsZero() && !bet.CreatedAt.After(period.Since) {
				continue
			}
			// обе команды считаются независимо
			teams[bet.Team1]++
			teams[bet.Team2]++
			types[bet.BetType]++
		}
		for _, top := range topCounts(teams) {
			popularTeams = append(popularTeams, models.PopularTeam{TeamName: top.Name, Count: top.Count, Period: period.Name})
		}
		for _, top := range topCounts(types) {
			popularTypes = append(popularTypes, models.PopularBetType{Type: top.Name, Count: top.Count, Period: period.Name})
		}
	}

	performance := make([]models.UserPerformance, 0, len(users))
	for _, user := range users {
		var total, green, red int
		profit := decimal.Zero
		for _, bet := range bets {
			if bet.UserID != user.UserID {
				continue
			}
			total++
			profit = profit.Add(bet.Profit)
			if bet.Status != models.BetStatusSettled {
				continue
			}
			if bet.Result == models.BetResultWin {
				green++
			} else {
				red++
			}
		}
		var winRate float64
		if green+red > 0 {
			winRate = float64(green) / float64(green+red) * 100
		}
		userProfit, _ := profit.Float64()
		performance = append(performance, models.UserPerformance{
			UserID:    user.UserID,
			Username:  user.Username,
			TotalBets: total,
			GreenBets: green,
			RedBets:   red,
			WinRate:   winRate,
			Profit:    userProfit,
		})
	}

	var wins, settled int
	totalProfit := decimal.Zero
	for _, bet := range bets {
		totalProfit = totalProfit.Add(bet.Profit)
		if bet.Status != models.BetStatusSettled {
			continue
		}
		settled++
		if bet.Result == models.BetResultWin {
			wins++
		}
	}
	var winRate float64
	if settled > 0 {
		winRate = float64(wins) / float64(settled) * 100
	}
	profit, _ := totalProfit.Float64()

	return models.AdminStats{
		TotalUsers:      len(users),
		TotalBets:       len(bets),
		TotalProfit:     profit,
		WinRate:         winRate,
		PopularTeams:    popularTeams,
		PopularBetTypes: popularTypes,
		UserPerformance: performance,
	}
}

type nameCount struct {
	Name  string
	Count int
}

// topCounts - топ частот по убыванию, при равенстве - по имени (для детерминизма)
func topCounts(counts map[string]int) []nameCount {
	items := make([]nameCount, 0, len(counts))
	for name, count := range counts {
		items = append(items, nameCount{Name: name, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > TopSize {
		items = items[:TopSize]
	}
	return items
}
