package service

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

func NewScheduler() gocron.Scheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	return scheduler
}

// ScheduleAdminBootstrap re-runs the admin bootstrap periodically. A store
// outage at startup then heals without a process restart.
func ScheduleAdminBootstrap(s gocron.Scheduler, userService *UserService) {
	if _, err := s.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			userService.EnsureAdmin(context.Background())
		}),
	); err != nil {
		log.Fatal(err)
	}
}
