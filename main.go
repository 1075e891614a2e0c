// @title TEDx Beixinqiao API
// @version 1.0
// @description Speaker submission and review backend for the TEDx Beixinqiao site

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	"github.com/spf13/viper"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/api"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
)

func main() {
	logging.BootstrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	// The yaml file is optional, everything can come from the environment.
	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Warnf("No config file found, using environment only: %v", err)
	}

	// Read config
	config := api.ReadConfig()

	// Start the service
	service := api.NewServer(config)
	service.Start()
}
