// migrate aplica las migraciones embebidas del almacén PostgreSQL: go run ./cmd/migrate -direction up
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/sm-customers/internal/infrastructure/postgres"
	"github.com/jhoicas/sm-customers/pkg/config"
)

func main() {
	direction := flag.String("direction", "up", "Dirección de la migración: up o down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(cfg.DB.ConnectionString(), *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	fmt.Println("migraciones aplicadas:", *direction)
}
