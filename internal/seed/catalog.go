// Package seed loads the bundled demo catalog into an empty database.
package seed

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/jszwec/csvutil"

	"travelmitr/internal/domain/models"
)

//go:embed data/*.csv
var files embed.FS

// OptionRow is a transport option keyed by endpoint names instead of ids.
type OptionRow struct {
	Source       string      `csv:"source"`
	Dest         string      `csv:"dest"`
	Mode         models.Mode `csv:"mode"`
	BaseCost     float64     `csv:"base_cost"`
	Duration     int         `csv:"duration"`
	ComfortLevel int         `csv:"comfort_level"`
}

// FareRow is one app quote applied to Cab options whose endpoints are both in
// City. City "*" is the fallback.
type FareRow struct {
	City          string  `csv:"city"`
	AppName       string  `csv:"app_name"`
	Fare          float64 `csv:"fare"`
	EstimatedTime int     `csv:"estimated_time"`
}

type Catalog struct {
	Destinations []models.DestinationInput
	Options      []OptionRow
	Fares        []FareRow
}

// Load decodes the embedded CSV catalog.
func Load() (Catalog, error) {
	var c Catalog
	if err := decode("data/destinations.csv", &c.Destinations); err != nil {
		return Catalog{}, err
	}
	if err := decode("data/transport_options.csv", &c.Options); err != nil {
		return Catalog{}, err
	}
	if err := decode("data/ride_fares.csv", &c.Fares); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func decode(name string, dst any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := csvutil.Unmarshal(bytes.TrimSpace(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// FaresFor returns the quotes for a Cab option between the two named places:
// the first city contained in both names, else the "*" rows.
func (c Catalog) FaresFor(source, dest string) []FareRow {
	var city string
	for _, f := range c.Fares {
		if f.City != "*" && strings.Contains(source, f.City) && strings.Contains(dest, f.City) {
			city = f.City
			break
		}
	}
	if city == "" {
		city = "*"
	}
	out := []FareRow{}
	for _, f := range c.Fares {
		if f.City == city {
			out = append(out, f)
		}
	}
	return out
}
