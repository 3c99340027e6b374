package scheduler

import (
	"log"
	"sync"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"storefront_backend/internal/model"
)

// Registry owns the cron engine and the settings-to-job mapping. It keeps
// at most one active job per mailing settings record; registering again for
// the same settings replaces the previous job. There is no unregistration
// path when a setting leaves the running state.
type Registry struct {
	cron       *cron.Cron
	db         *gorm.DB
	dispatcher *Dispatcher

	mu      sync.Mutex
	entries map[uint]cron.EntryID
}

func NewRegistry(db *gorm.DB, transport Transport) *Registry {
	return &Registry{
		cron:       cron.New(),
		db:         db,
		dispatcher: NewDispatcher(db, transport),
		entries:    make(map[uint]cron.EntryID),
	}
}

// Register plans a recurring job for the given settings. Settings with an
// unknown frequency are skipped. Safe for concurrent use.
func (r *Registry) Register(settings model.MailingSettings) {
	spec, ok := CronSpec(settings.Frequency, settings.StartTime)
	if !ok {
		log.Printf("[Scheduler] Skipping settings %d: unknown frequency %q", settings.ID, settings.Frequency)
		return
	}

	settingsID := settings.ID
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DefaultLogger)).Then(cron.FuncJob(func() {
		if err := r.dispatcher.Dispatch(settingsID); err != nil {
			log.Printf("[Scheduler] Dispatch failed for settings %d: %v", settingsID, err)
		}
	}))

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[settingsID]; ok {
		r.cron.Remove(existing)
	}

	entryID, err := r.cron.AddJob(spec, job)
	if err != nil {
		log.Printf("[Scheduler] Could not register settings %d (%s): %v", settingsID, spec, err)
		delete(r.entries, settingsID)
		return
	}
	r.entries[settingsID] = entryID

	log.Printf("[Scheduler] Registered settings %d with spec %q", settingsID, spec)
}

// SeedFromDatabase registers a job for every settings record currently in
// running status. Called once at process start.
func (r *Registry) SeedFromDatabase() error {
	var settings []model.MailingSettings
	if err := r.db.Where("status = ?", model.MailingStatusRunning).Find(&settings).Error; err != nil {
		return err
	}

	for _, s := range settings {
		r.Register(s)
	}

	log.Printf("[Scheduler] Seeded %d running mailing settings", len(settings))
	return nil
}

func (r *Registry) Start() {
	r.cron.Start()
	log.Printf("[Scheduler] Started")
}

func (r *Registry) Stop() {
	r.cron.Stop()
	log.Printf("[Scheduler] Stopped")
}

// JobCount returns the number of registered jobs.
func (r *Registry) JobCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
