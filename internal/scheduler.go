package internal

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-co-op/gocron/v2"
)

// NewScheduler runs job once straight away and then every day at the given
// "HH:MM" time. The initial run must succeed for the scheduler to start.
func NewScheduler(at string, job func() error) (gocron.Scheduler, error) {

	hour, minute, err := parseAtTime(at)
	if err != nil {
		return nil, err
	}

	if err := job(); err != nil {
		return nil, fmt.Errorf("initial run of job failed: %w", err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(
			gocron.NewAtTime(hour, minute, 00),
		)),
		gocron.NewTask(func() {
			if err := job(); err != nil {
				log.Printf("Scheduled run failed: %v", err)
			}
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Scheduled daily batch run at %02d:%02d", hour, minute)
	scheduler.Start()
	return scheduler, nil
}

func parseAtTime(at string) (uint, uint, error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", at)
	}

	hour, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", at)
	}

	minute, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", at)
	}

	return uint(hour), uint(minute), nil
}
