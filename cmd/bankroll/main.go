package main

import (
	"fmt"

	"github.com/denmor86/bet-bankroll/internal/app"
	"github.com/denmor86/bet-bankroll/internal/config"
	"github.com/denmor86/bet-bankroll/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// запуск приложения
	app.Run(config)
}
