package main

import (
	"context"
	"strings"
	"time"

	"github.com/ecakir/cart-dashboard/internal/api"
	"github.com/ecakir/cart-dashboard/internal/pkg/constants"
	"github.com/ecakir/cart-dashboard/internal/pkg/logger"
	"github.com/ecakir/cart-dashboard/internal/pkg/search"
	"github.com/ecakir/cart-dashboard/internal/service/dashboard"
	"github.com/ecakir/cart-dashboard/internal/service/location"
	"github.com/spf13/viper"
)

func main() {
	if err := logger.Init(false); err != nil {
		panic(err)
	}
	defer logger.Sync()
	initConfig()

	ctx := context.Background()

	engine, err := search.NewClient(search.Config{
		URL:          viper.GetString(constants.ViperKeyElasticURL),
		CartIndex:    viper.GetString(constants.ViperKeyElasticCartIndex),
		ProfileIndex: viper.GetString(constants.ViperKeyElasticProfileIndex),
		Timeout:      time.Duration(viper.GetInt(constants.ViperKeyElasticTimeoutSeconds)) * time.Second,
		MaxRetries:   viper.GetInt(constants.ViperKeyElasticMaxRetries),
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	dashboardService := dashboard.NewService(engine, engine.Indices())
	locationService := location.NewService(viper.GetString(constants.ViperKeyLocationFile))

	apiService, err := api.NewAPIService(dashboardService, locationService)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	apiService.Serve(viper.GetString(constants.ViperKeyServerAddr))
}

func initConfig() {
	viper.SetDefault(constants.ViperKeyServerAddr, constants.DefaultServerAddr)
	viper.SetDefault(constants.ViperKeyElasticURL, constants.DefaultElasticURL)
	viper.SetDefault(constants.ViperKeyElasticCartIndex, constants.DefaultCartIndex)
	viper.SetDefault(constants.ViperKeyElasticProfileIndex, constants.DefaultProfileIndex)
	viper.SetDefault(constants.ViperKeyElasticTimeoutSeconds, constants.DefaultTimeoutSeconds)
	viper.SetDefault(constants.ViperKeyElasticMaxRetries, constants.DefaultMaxRetries)
	viper.SetDefault(constants.ViperKeyLocationFile, constants.DefaultLocationFile)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		logger.Infof(context.Background(), "no config file, using defaults and environment: %s", err.Error())
	}
}
