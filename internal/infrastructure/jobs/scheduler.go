package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/jhoicas/sm-customers/pkg/logger"
)

// ReconciliationJobName nombre del job que informa de empresas sin administrador.
const ReconciliationJobName = "reconciliation-report"

// Reporter ejecuta una pasada de reconciliación y devuelve cuántas incidencias encontró.
type Reporter interface {
	Report(ctx context.Context) (int, error)
}

// Scheduler ejecuta los jobs periódicos del servicio.
type Scheduler struct {
	scheduler gocron.Scheduler
	log       *logger.Logger
	jobs      map[string]gocron.Job
	timeout   time.Duration
}

// NewScheduler crea el planificador sin jobs. timeout acota cada ejecución.
func NewScheduler(timeout time.Duration, log *logger.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("crear scheduler: %w", err)
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		scheduler: s,
		log:       log.Component("jobs"),
		jobs:      make(map[string]gocron.Job),
		timeout:   timeout,
	}, nil
}

// ScheduleReconciliation registra el informe cada interval. Con interval 0 no registra nada.
// Las ejecuciones no se solapan: si una sigue en curso, la siguiente se reprograma.
func (s *Scheduler) ScheduleReconciliation(interval time.Duration, r Reporter) error {
	if interval <= 0 {
		s.log.Info().Msg("reconciliación periódica desactivada")
		return nil
	}
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.runReport, r),
		gocron.WithName(ReconciliationJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("registrar %s: %w", ReconciliationJobName, err)
	}
	s.jobs[ReconciliationJobName] = job
	s.log.Info().Dur("interval", interval).Msg("reconciliación programada")
	return nil
}

func (s *Scheduler) runReport(r Reporter) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := r.Report(ctx); err != nil {
		s.log.Error().Err(err).Str("job", ReconciliationJobName).Msg("job fallido")
	}
}

// Job devuelve el job registrado con ese nombre, si existe.
func (s *Scheduler) Job(name string) (gocron.Job, bool) {
	j, ok := s.jobs[name]
	return j, ok
}

// Start arranca el planificador.
func (s *Scheduler) Start() {
	s.log.Info().Int("jobs", len(s.jobs)).Msg("iniciando scheduler")
	s.scheduler.Start()
}

// Stop detiene el planificador esperando a los jobs en curso.
func (s *Scheduler) Stop() error {
	s.log.Info().Msg("deteniendo scheduler")
	return s.scheduler.Shutdown()
}
