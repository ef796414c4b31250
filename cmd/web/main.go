package main

import (
	"context"
	"strings"
	"time"

	"github.com/ecakir/cart-dashboard/internal/pkg/constants"
	"github.com/ecakir/cart-dashboard/internal/pkg/logger"
	"github.com/ecakir/cart-dashboard/internal/web"
	"github.com/spf13/viper"
)

func main() {
	if err := logger.Init(false); err != nil {
		panic(err)
	}
	defer logger.Sync()
	initConfig()

	client := web.NewClient(
		viper.GetString(constants.ViperKeyWebAPIBaseURL),
		time.Duration(viper.GetInt(constants.ViperKeyElasticTimeoutSeconds))*time.Second,
	)

	web.NewWebService(client).Serve(viper.GetString(constants.ViperKeyWebAddr))
}

func initConfig() {
	viper.SetDefault(constants.ViperKeyWebAddr, constants.DefaultWebAddr)
	viper.SetDefault(constants.ViperKeyWebAPIBaseURL, constants.DefaultAPIBaseURL)
	viper.SetDefault(constants.ViperKeyElasticTimeoutSeconds, constants.DefaultTimeoutSeconds)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		logger.Infof(context.Background(), "no config file, using defaults and environment: %s", err.Error())
	}
}
