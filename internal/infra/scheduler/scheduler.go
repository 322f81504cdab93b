package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler runs a job once on start and then every interval.
// Ticks that arrive while the job is still running are skipped, so at
// most one run is in flight.
type PollScheduler struct {
	cronEngine *cron.Cron
	interval   time.Duration
	logger     logrus.FieldLogger
	entryID    cron.EntryID
}

// NewPollScheduler uses cron's constant-delay schedule, which rounds the
// interval down to whole seconds and never goes below one second.
func NewPollScheduler(interval time.Duration, logger logrus.FieldLogger) *PollScheduler {
	cronLog := cronLogger{logger: logger}
	return &PollScheduler{
		cronEngine: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.SkipIfStillRunning(cronLog)),
		),
		interval: interval,
		logger:   logger,
	}
}

// Start runs job immediately, then hands it to the cron engine.
func (s *PollScheduler) Start(job func()) {
	s.logger.WithField("interval", s.interval.String()).Info("Starting poll scheduler...")
	s.entryID = s.cronEngine.Schedule(cron.Every(s.interval), cron.FuncJob(job))

	s.runNow()

	s.cronEngine.Start()
	s.logger.WithField("next_run", s.cronEngine.Entry(s.entryID).Next.Format(time.RFC3339)).
		Info("Poll scheduler started.")
}

// runNow runs the job through the same chain as scheduled ticks.
func (s *PollScheduler) runNow() {
	s.cronEngine.Entry(s.entryID).WrappedJob.Run()
}

func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops new ticks, waits for a running poll.
	<-ctx.Done()
	s.logger.Info("Poll scheduler gracefully stopped.")
}

// cronLogger routes cron's own logging to logrus. Routine messages go to debug.
type cronLogger struct {
	logger logrus.FieldLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(toFields(keysAndValues)).Debugf("cron: %s", msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.WithError(err).WithFields(toFields(keysAndValues)).Errorf("cron: %s", msg)
}

func toFields(keysAndValues []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
