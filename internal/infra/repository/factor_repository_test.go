package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/testutil"
)

func TestGetHourlyFactors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)
	repo := NewFactorRepository(client)

	tests := []struct {
		name     string
		setup    func(t *testing.T)
		expected domain.HourlyFactorTable
		wantErr  error
	}{
		{
			name:     "empty store returns empty table",
			setup:    func(t *testing.T) {},
			expected: domain.HourlyFactorTable{},
		},
		{
			name: "stored hours are parsed",
			setup: func(t *testing.T) {
				if err := client.HSet(ctx, hourlyFactorsKey, "0", "0.83", "13", "1.5").Err(); err != nil {
					t.Fatalf("failed to set up test data: %v", err)
				}
			},
			expected: domain.HourlyFactorTable{0: 0.83, 13: 1.5},
		},
		{
			name: "hour out of range is rejected",
			setup: func(t *testing.T) {
				if err := client.HSet(ctx, hourlyFactorsKey, "24", "1.0").Err(); err != nil {
					t.Fatalf("failed to set up test data: %v", err)
				}
			},
			wantErr: ErrInvalidFactorData,
		},
		{
			name: "non-numeric factor is rejected",
			setup: func(t *testing.T) {
				if err := client.HSet(ctx, hourlyFactorsKey, "5", "abc").Err(); err != nil {
					t.Fatalf("failed to set up test data: %v", err)
				}
			},
			wantErr: ErrInvalidFactorData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.ResetRedis(ctx, t, client)
			tt.setup(t)

			table, err := repo.GetHourlyFactors(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetHourlyFactors() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(table) != len(tt.expected) {
				t.Fatalf("len(table) = %d, want %d", len(table), len(tt.expected))
			}
			for hour, want := range tt.expected {
				if got := table[hour]; got != want {
					t.Errorf("table[%d] = %v, want %v", hour, got, want)
				}
			}
		})
	}
}

func TestSaveHourlyFactor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)
	repo := NewFactorRepository(client)

	if err := repo.SaveHourlyFactor(ctx, 7, 1.14); err != nil {
		t.Fatalf("SaveHourlyFactor() error = %v", err)
	}
	if err := repo.SaveHourlyFactor(ctx, 7, 1.2); err != nil {
		t.Fatalf("SaveHourlyFactor() error = %v", err)
	}

	table, err := repo.GetHourlyFactors(ctx)
	if err != nil {
		t.Fatalf("GetHourlyFactors() error = %v", err)
	}
	if table[7] != 1.2 {
		t.Errorf("table[7] = %v, want 1.2", table[7])
	}
	if len(table) != 1 {
		t.Errorf("len(table) = %d, want 1", len(table))
	}
}

func TestSeedHourlyFactors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)
	repo := NewFactorRepository(client)

	seed := domain.HourlyFactorTable{0: 0.83, 1: 0.77}

	seeded, err := repo.SeedHourlyFactors(ctx, seed)
	if err != nil {
		t.Fatalf("SeedHourlyFactors() error = %v", err)
	}
	if !seeded {
		t.Error("first SeedHourlyFactors() = false, want true")
	}

	seeded, err = repo.SeedHourlyFactors(ctx, domain.HourlyFactorTable{0: 2.0})
	if err != nil {
		t.Fatalf("SeedHourlyFactors() error = %v", err)
	}
	if seeded {
		t.Error("second SeedHourlyFactors() = true, want false")
	}

	table, err := repo.GetHourlyFactors(ctx)
	if err != nil {
		t.Fatalf("GetHourlyFactors() error = %v", err)
	}
	if table[0] != 0.83 || table[1] != 0.77 {
		t.Errorf("table = %v, want %v", table, seed)
	}
}

func TestCalorieFactors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)
	repo := NewFactorRepository(client)

	_, err := repo.GetCalorieFactors(ctx)
	if !errors.Is(err, domain.ErrCalorieFactorsNotFound) {
		t.Fatalf("GetCalorieFactors() error = %v, want %v", err, domain.ErrCalorieFactorsNotFound)
	}

	defaults := domain.CalorieFactors{UsualBeCalories: 105, InsulinTypeCalorieCovering: 200}
	seeded, err := repo.SeedCalorieFactors(ctx, defaults)
	if err != nil || !seeded {
		t.Fatalf("SeedCalorieFactors() = %v, %v, want true, nil", seeded, err)
	}

	got, err := repo.GetCalorieFactors(ctx)
	if err != nil {
		t.Fatalf("GetCalorieFactors() error = %v", err)
	}
	if *got != defaults {
		t.Errorf("GetCalorieFactors() = %+v, want %+v", *got, defaults)
	}

	updated := domain.CalorieFactors{UsualBeCalories: 112.5, InsulinTypeCalorieCovering: 150}
	if err := repo.SaveCalorieFactors(ctx, updated); err != nil {
		t.Fatalf("SaveCalorieFactors() error = %v", err)
	}

	seeded, err = repo.SeedCalorieFactors(ctx, defaults)
	if err != nil || seeded {
		t.Errorf("SeedCalorieFactors() after save = %v, %v, want false, nil", seeded, err)
	}

	got, err = repo.GetCalorieFactors(ctx)
	if err != nil {
		t.Fatalf("GetCalorieFactors() error = %v", err)
	}
	if *got != updated {
		t.Errorf("GetCalorieFactors() = %+v, want %+v", *got, updated)
	}
}

func TestFactorRepository_ConnectionErrors(t *testing.T) {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	if err := client.Close(); err != nil {
		t.Fatalf("failed to close client: %v", err)
	}
	repo := NewFactorRepository(client)

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "get hourly factors",
			call: func() error {
				_, err := repo.GetHourlyFactors(ctx)
				return err
			},
		},
		{
			name: "save hourly factor",
			call: func() error {
				return repo.SaveHourlyFactor(ctx, 7, 1.2)
			},
		},
		{
			name: "seed hourly factors",
			call: func() error {
				_, err := repo.SeedHourlyFactors(ctx, domain.HourlyFactorTable{0: 0.83})
				return err
			},
		},
		{
			name: "get calorie factors",
			call: func() error {
				_, err := repo.GetCalorieFactors(ctx)
				return err
			},
		},
		{
			name: "save calorie factors",
			call: func() error {
				return repo.SaveCalorieFactors(ctx, domain.CalorieFactors{UsualBeCalories: 105, InsulinTypeCalorieCovering: 200})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, ErrRedisConnection) {
				t.Errorf("error = %v, want %v", err, ErrRedisConnection)
			}
			if !errors.Is(err, domain.ErrFactorStoreUnavailable) {
				t.Errorf("error = %v, want wrapped ErrFactorStoreUnavailable", err)
			}
		})
	}
}
