package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/ackgate/pkg/record"
)

const keyPrefix = "af-"

// Fixed record keys.
const (
	KeyAcknowledgement = "af-acknowledgement-v1"
	KeyChecklist       = "af-checklist-v1"
	KeyHistory         = "af-history-v1"
	KeyConfig          = "af-config-v1"
)

// Records is the typed view over a Persistence. Loaders never fail: a missing
// record yields the documented default, a malformed one yields the default and
// a warning in the log.
type Records struct {
	p   Persistence
	log *slog.Logger
}

// NewRecords wraps p. A nil logger uses slog.Default().
func NewRecords(p Persistence, log *slog.Logger) *Records {
	if log == nil {
		log = slog.Default()
	}
	return &Records{p: p, log: log}
}

// Persistence returns the underlying store.
func (r *Records) Persistence() Persistence {
	return r.p
}

func (r *Records) load(key string, v any) error {
	raw, err := r.p.Read(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		rerr := &ReadError{Key: key, Err: err}
		r.log.Warn("store: unreadable record, using default", "key", key, "err", err)
		return rerr
	}
	if len(raw) == 0 {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, v); err != nil {
		rerr := &ReadError{Key: key, Err: err}
		r.log.Warn("store: malformed record, using default", "key", key, "err", err)
		return rerr
	}
	return nil
}

func (r *Records) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := r.p.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// LoadAcknowledgement returns the latest acknowledgement, if any.
func (r *Records) LoadAcknowledgement() (record.Acknowledgement, bool) {
	var ack record.Acknowledgement
	if err := r.load(KeyAcknowledgement, &ack); err != nil {
		return record.Acknowledgement{}, false
	}
	return ack, true
}

// SaveAcknowledgement replaces the acknowledgement record.
func (r *Records) SaveAcknowledgement(ack record.Acknowledgement) error {
	return r.save(KeyAcknowledgement, ack)
}

// LoadChecklist returns the stored checklist. ok is false when nothing usable
// was stored.
func (r *Records) LoadChecklist() (record.Checklist, bool) {
	var c record.Checklist
	if err := r.load(KeyChecklist, &c); err != nil {
		return record.Checklist{Items: map[string]bool{}}, false
	}
	if c.Items == nil {
		c.Items = map[string]bool{}
	}
	return c, true
}

// SaveChecklist replaces the checklist record.
func (r *Records) SaveChecklist(c record.Checklist) error {
	return r.save(KeyChecklist, c)
}

// LoadHistory returns the stored history, newest first.
func (r *Records) LoadHistory() []record.HistoryEntry {
	var h []record.HistoryEntry
	if err := r.load(KeyHistory, &h); err != nil {
		return []record.HistoryEntry{}
	}
	if h == nil {
		h = []record.HistoryEntry{}
	}
	return h
}

// SaveHistory replaces the history record.
func (r *Records) SaveHistory(h []record.HistoryEntry) error {
	if h == nil {
		h = []record.HistoryEntry{}
	}
	return r.save(KeyHistory, h)
}

// LoadUserConfig returns the stored user configuration with empty fields
// filled from record.Defaults. ok reports whether a record was stored.
func (r *Records) LoadUserConfig() (record.UserConfig, bool) {
	var c record.UserConfig
	if err := r.load(KeyConfig, &c); err != nil {
		return record.Defaults(), false
	}
	return c.WithDefaults(), true
}

// SaveUserConfig overwrites the user configuration.
func (r *Records) SaveUserConfig(c record.UserConfig) error {
	return r.save(KeyConfig, c)
}

// ResetUserConfig drops the stored configuration so Defaults apply again.
func (r *Records) ResetUserConfig() error {
	if err := r.p.Erase(KeyConfig); err != nil {
		return fmt.Errorf("store: erase %s: %w", KeyConfig, err)
	}
	return nil
}
