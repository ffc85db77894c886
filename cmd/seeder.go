package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/yellomango9/it-mgmt-tool/internal/auth"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"log_entries", "complaints", "peripherals", "systems", "users", "networks", "departments"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		departments := []string{"IT", "Finance", "Human Resources", "Operations"}
		for _, name := range departments {
			var exists int
			if err := db.Raw("SELECT 1 FROM departments WHERE name = ?", name).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO departments (name, created_at) VALUES (?, now())", name).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", name, err)
			}
			fmt.Printf("Seeded department: %s\n", name)
		}

		networks := []struct {
			Name string
			CIDR string
		}{
			{"Office LAN", "10.0.0.0/24"},
			{"Server VLAN", "10.0.10.0/24"},
			{"Guest WiFi", "192.168.50.0/24"},
		}
		for _, n := range networks {
			var exists int
			if err := db.Raw("SELECT 1 FROM networks WHERE name = ?", n.Name).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO networks (name, cidr, created_at) VALUES (?, ?, now())", n.Name, n.CIDR).Error; err != nil {
				log.Fatalf("failed to insert network %s: %v", n.Name, err)
			}
			fmt.Printf("Seeded network: %s\n", n.Name)
		}

		adminEmail := "admin@mail.com"
		var exists int
		if err := db.Raw("SELECT 1 FROM users WHERE email = ?", adminEmail).Row().Scan(&exists); err == nil {
			fmt.Println("admin user already exists; nothing to do")
			return
		}

		hash, err := auth.HashPassword("admin123")
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		var deptID int64
		if err := db.Raw("SELECT id FROM departments WHERE name = ?", "IT").Row().Scan(&deptID); err != nil {
			log.Fatalf("failed to lookup IT department: %v", err)
		}

		if err := db.Exec(
			"INSERT INTO users (full_name, email, password_hash, role, department_id, is_active, created_at, updated_at) VALUES (?, ?, ?, 'Admin', ?, true, now(), now())",
			"Administrator", adminEmail, hash, deptID,
		).Error; err != nil {
			log.Fatalf("failed to insert admin user: %v", err)
		}
		fmt.Println("Seeded admin user:", adminEmail)
	},
}
