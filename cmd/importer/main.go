package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"upcoming-elections/internal/config"
	"upcoming-elections/internal/models"
	"upcoming-elections/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

func main() {
	file := flag.String("file", "", "Path to the regions CSV file to import")
	flag.Parse()

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	gotenv.Load()

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}

	log.Info().Int("records", len(records)).Msg("parsed records")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required")
	}

	ctx := context.Background()

	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		log.Fatal().Err(err).Msg("cannot create table")
	}

	if err := insertRecords(ctx, conn, records); err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	if err := verifyImport(ctx, conn, len(records)); err != nil {
		log.Fatal().Err(err).Msg("cannot verify import")
	}

	log.Info().Int("records", len(records)).Msg("import finished")
}

// parseCSV reads country,code,name rows after a header row.
func parseCSV(r io.Reader) ([]models.Region, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var regions []models.Region
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("invalid record length: %d, expected 3 columns", len(record))
		}

		country := strings.ToUpper(strings.TrimSpace(record[0]))
		if len(country) != 2 {
			return nil, fmt.Errorf("invalid country code: %q", record[0])
		}

		regions = append(regions, models.Region{
			Country: country,
			Code:    strings.ToUpper(strings.TrimSpace(record[1])),
			Name:    strings.TrimSpace(record[2]),
		})
	}

	return regions, nil
}

func insertRecords(ctx context.Context, conn *pgx.Conn, regions []models.Region) error {
	_, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{"regions"},
		[]string{"country", "code", "name"},
		pgx.CopyFromSlice(len(regions), func(i int) ([]interface{}, error) {
			r := regions[i]
			return []interface{}{r.Country, r.Code, r.Name}, nil
		}),
	)
	return err
}

func verifyImport(ctx context.Context, conn *pgx.Conn, expectedCount int) error {
	var count int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM regions").Scan(&count); err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count < expectedCount {
		return fmt.Errorf("record count mismatch: expected at least %d, got %d", expectedCount, count)
	}

	return nil
}
