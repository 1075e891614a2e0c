// reviewdesk is the reviewer's terminal dashboard. It connects straight to the
// submissions database and drives the same review table the web dashboard uses.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/lib/pq"
	"github.com/spf13/viper"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/api"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/tui"
)

func main() {
	logging.BootstrapLogger()
	// Keep the alt screen clean; the TUI surfaces errors itself.
	logging.Log.Out = io.Discard

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	config := api.ReadConfig()

	db, err := sql.Open("postgres", config.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reach database: %v\n", err)
		os.Exit(1)
	}

	store := &tui.Store{
		Applications: &storage.PostgresApplicationStorage{DB: db},
		Nominations:  &storage.PostgresNominationStorage{DB: db},
	}

	if _, err := tea.NewProgram(tui.New(store), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "reviewdesk failed: %v\n", err)
		os.Exit(1)
	}
}
