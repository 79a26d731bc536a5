package helper

import (
	"log"
	"time"

	"horizon_booking/database"
	"horizon_booking/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	reconcileScheduler *cron.Cron
	otpScheduler       gocron.Scheduler
)

// StartReconcileScheduler re-derives available_seats from the live seat rows
// every 10 minutes, healing any drift between the counter and the pool.
func StartReconcileScheduler() {
	reconcileScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reconcileScheduler.AddFunc("*/10 * * * *", ReconcileSeatCounters)
	if err != nil {
		log.Printf("failed to start seat reconcile scheduler: %v", err)
		return
	}

	reconcileScheduler.Start()
	log.Println("seat counter reconcile scheduler started (every 10 minutes)")
}

func StopReconcileScheduler() {
	if reconcileScheduler != nil {
		reconcileScheduler.Stop()
	}
}

func ReconcileSeatCounters() {
	result := database.DB.Exec(`
		UPDATE compartments
		SET available_seats = sub.cnt
		FROM (
			SELECT compartment_id, COUNT(*) FILTER (WHERE is_available) AS cnt
			FROM seats
			GROUP BY compartment_id
		) AS sub
		WHERE compartments.id = sub.compartment_id
		  AND compartments.available_seats <> sub.cnt`)

	if result.Error != nil {
		log.Printf("seat counter reconcile failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("reconciled %d drifted compartment counters", result.RowsAffected)
	}
}

// StartOtpCleanupScheduler purges expired verification codes daily at 00:15.
func StartOtpCleanupScheduler() {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		log.Fatal(err)
	}

	otpScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 15, 0),
			),
		),
		gocron.NewTask(purgeExpiredOtps),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("otp cleanup scheduler started (00:15 UTC)")
}

func StopOtpCleanupScheduler() {
	if otpScheduler != nil {
		_ = otpScheduler.Shutdown()
	}
}

func purgeExpiredOtps() {
	result := database.DB.Where("expires_at < ?", time.Now()).Delete(&model.VerificationCode{})
	if result.Error != nil {
		log.Printf("otp cleanup failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("purged %d expired otp codes", result.RowsAffected)
	}
}
