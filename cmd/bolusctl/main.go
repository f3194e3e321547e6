package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/infra/repository"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/observability/logging"
	"github.com/KasumiMercury/primind-bolus-calculator/internal/service/bolus"
)

func newRedisAddrFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "redis-addr",
		Usage:   "Redis address to read stored factors from; the fallback table is used when empty",
		EnvVars: []string{"REDIS_ADDR"},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "bolusctl",
		Usage: "Compute a meal bolus from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logging.ParseLevel(c.String("log-level")),
			})))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "calculate",
				Usage: "Calculate the bolus for one meal",
				Flags: []cli.Flag{
					newRedisAddrFlag(),
					&cli.Float64Flag{Name: "carbs", Usage: "Meal carbohydrates in grams", Required: true},
					&cli.Float64Flag{Name: "calories", Usage: "Meal calories in kcal", Required: true},
					&cli.Float64Flag{Name: "usual-be-calories", Usage: "Usual calories per BE", Value: 105, EnvVars: []string{"DEFAULT_USUAL_BE_CALORIES"}},
					&cli.Float64Flag{Name: "calorie-covering", Usage: "Insulin type calorie covering", Value: 200, EnvVars: []string{"DEFAULT_INSULIN_CALORIE_COVERING"}},
					&cli.IntFlag{Name: "hour", Usage: "Meal hour (0-23), defaults to now"},
					&cli.IntFlag{Name: "minute", Usage: "Meal minute (0-59), defaults to now"},
					&cli.Float64Flag{Name: "movement", Usage: "Movement factor", Value: 1.0},
					&cli.IntFlag{Name: "window", Usage: "Averaging window in minutes", Value: 120, EnvVars: []string{"BOLUS_WINDOW_MINUTES"}},
					&cli.BoolFlag{Name: "json", Usage: "Print the full result as JSON"},
				},
				Action: runCalculate,
			},
			{
				Name:  "factors",
				Usage: "Print the hourly bolus factors in effect",
				Flags: []cli.Flag{
					newRedisAddrFlag(),
				},
				Action: runFactors,
			},
		},
	}
}

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService(c *cli.Context, settings bolus.Settings) (*bolus.Service, func()) {
	addr := c.String("redis-addr")
	if addr == "" {
		return bolus.NewService(nil, nil, settings, nil), func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	closeClient := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}

	return bolus.NewService(repository.NewFactorRepository(client), nil, settings, nil), closeClient
}

func runCalculate(c *cli.Context) error {
	now := time.Now()
	hour, minute := now.Hour(), now.Minute()
	if c.IsSet("hour") {
		hour = c.Int("hour")
	}
	if c.IsSet("minute") {
		minute = c.Int("minute")
	}

	svc, cleanup := newService(c, bolus.Settings{
		WindowMinutes:              c.Int("window"),
		UsualBeCalories:            c.Float64("usual-be-calories"),
		InsulinTypeCalorieCovering: c.Float64("calorie-covering"),
	})
	defer cleanup()

	req := bolus.Request{
		MealCarbs:      c.Float64("carbs"),
		MealCalories:   c.Float64("calories"),
		CurrentHour:    hour,
		CurrentMinute:  minute,
		MovementFactor: c.Float64("movement"),
	}
	// Unset calorie flags leave the values to the store and the defaults.
	if c.IsSet("usual-be-calories") {
		usual := c.Float64("usual-be-calories")
		req.UsualBeCalories = &usual
	}
	if c.IsSet("calorie-covering") {
		covering := c.Float64("calorie-covering")
		req.InsulinTypeCalorieCovering = &covering
	}

	result, err := svc.Calculate(c.Context, req)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	return printResult(c.App.Writer, result)
}

func printResult(w io.Writer, result *bolus.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"time", fmt.Sprintf("%02d:%02d", result.CurrentHour, result.CurrentMinute)},
		{"usual bolus factor", fmt.Sprintf("%.3f", result.UsualBolusFactor)},
		{"BE", fmt.Sprintf("%.2f", result.Intermediate.BeSum)},
		{"calories per BE", fmt.Sprintf("%.2f", result.Intermediate.BeCalories)},
		{"fat/protein calories", fmt.Sprintf("%.2f", result.Intermediate.FatProteinCalories)},
		{"strategy", result.Selection.Strategy.String()},
		{"rationale", result.Selection.Explanation},
		{"correct BE factor", fmt.Sprintf("%.3f", result.Method.CorrectBeFactor)},
		{"bolus", fmt.Sprintf("%.2f", result.Method.CorrectBolusSum)},
		{"delayed calorie bolus", fmt.Sprintf("%.2f", result.Method.DelayedCalorieBolus)},
		{"movement factor", fmt.Sprintf("%.2f", result.MovementFactor)},
		{"final bolus", fmt.Sprintf("%.2f", result.FinalCorrectBolus)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.label, row.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runFactors(c *cli.Context) error {
	svc, cleanup := newService(c, bolus.DefaultSettings())
	defer cleanup()

	rows, err := svc.HourlyFactors(c.Context)
	if err != nil {
		return fmt.Errorf("load hourly factors: %w", err)
	}

	return printFactors(c.App.Writer, rows)
}

func printFactors(w io.Writer, rows []domain.HourlyFactor) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "hour\tfactor"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%02d\t%.2f\n", row.Hour, row.BolusFactor); err != nil {
			return err
		}
	}
	return tw.Flush()
}
