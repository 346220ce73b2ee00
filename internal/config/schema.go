package config

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []struct {
	table string
	ddl   string
}{
	{"User", `
CREATE TABLE IF NOT EXISTS User (
	user_id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(100) UNIQUE NOT NULL,
	password VARCHAR(255) NOT NULL,
	phone VARCHAR(20) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"Destination", `
CREATE TABLE IF NOT EXISTS Destination (
	dest_id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	state VARCHAR(50) NOT NULL,
	city VARCHAR(50) NOT NULL,
	pincode VARCHAR(10) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"TransportOption", `
CREATE TABLE IF NOT EXISTS TransportOption (
	trans_id INT AUTO_INCREMENT PRIMARY KEY,
	source_id INT NOT NULL,
	dest_id INT NOT NULL,
	mode VARCHAR(50) NOT NULL,
	base_cost DECIMAL(10, 2) NOT NULL,
	duration INT NOT NULL,
	comfort_level INT NOT NULL,
	KEY idx_route (source_id, dest_id),
	FOREIGN KEY (source_id) REFERENCES Destination(dest_id),
	FOREIGN KEY (dest_id) REFERENCES Destination(dest_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"RideFare", `
CREATE TABLE IF NOT EXISTS RideFare (
	ride_id INT AUTO_INCREMENT PRIMARY KEY,
	trans_id INT NOT NULL,
	app_name VARCHAR(50) NOT NULL,
	fare DECIMAL(10, 2) NOT NULL,
	estimated_time INT NOT NULL,
	FOREIGN KEY (trans_id) REFERENCES TransportOption(trans_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"Trip", `
CREATE TABLE IF NOT EXISTS Trip (
	trip_id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	source_id INT NOT NULL,
	dest_id INT NOT NULL,
	selected_mode VARCHAR(50) NOT NULL,
	total_cost DECIMAL(10, 2) NOT NULL,
	total_duration INT NOT NULL,
	comfort_score INT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_user_created (user_id, created_at),
	FOREIGN KEY (user_id) REFERENCES User(user_id),
	FOREIGN KEY (source_id) REFERENCES Destination(dest_id),
	FOREIGN KEY (dest_id) REFERENCES Destination(dest_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// Tables lists the schema tables in dependency order.
func Tables() []string {
	out := make([]string, len(schema))
	for i, s := range schema {
		out[i] = s.table
	}
	return out
}

// EnsureSchema creates any missing tables.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", s.table, err)
		}
	}
	return nil
}
