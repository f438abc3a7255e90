package storage

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/replay"
	"gopkg.in/yaml.v3"
)

// Archive saves replays together with the match that produced them, so they
// can be re-simulated later.
type Archive struct {
	Catalog *Catalog
	Blobs   Blobs
}

func NewArchive(c *Catalog, b Blobs) *Archive {
	return &Archive{Catalog: c, Blobs: b}
}

// Key names a replay after its start time and checksum.
func Key(r *replay.Replay) string {
	return fmt.Sprintf("replay-%d-%08x", r.Meta.Timestamp, r.Meta.Checksum)
}

func matchKey(key string) string {
	return key + ".match"
}

// Save encodes r, stores it and the match, and catalogues it.
func (a *Archive) Save(r *replay.Replay, match cfg.MatchConfig) (Entry, error) {
	key := Key(r)
	data, err := replay.Marshal(r)
	if err != nil {
		return Entry{}, fmt.Errorf("storage: save %s: %w", key, err)
	}
	matchData, err := yaml.Marshal(match)
	if err != nil {
		return Entry{}, fmt.Errorf("storage: save %s: match: %w", key, err)
	}
	e := Entry{
		Key:        key,
		Match:      match.Name,
		Stage:      r.Meta.Stage,
		Characters: r.Meta.Characters,
		Winner:     r.Meta.Winner,
		Frames:     len(r.Frames),
		Duration:   r.Meta.Duration,
		Checksum:   r.Meta.Checksum,
		Seed:       match.Seed,
		RecordedAt: time.Unix(r.Meta.Timestamp, 0),
	}
	// The catalog row goes in first: a duplicate key must not touch the
	// blobs of the replay already stored under it.
	id, err := a.Catalog.Add(e)
	if err != nil {
		return Entry{}, err
	}
	if err := a.saveBlobs(key, data, matchData); err != nil {
		if rmErr := a.Catalog.Remove(key); rmErr != nil {
			return Entry{}, errors.Join(err, rmErr)
		}
		return Entry{}, err
	}
	e.ID = id
	return e, nil
}

func (a *Archive) saveBlobs(key string, data, matchData []byte) error {
	if err := a.Blobs.Save(key, data); err != nil {
		return err
	}
	if err := a.Blobs.Save(matchKey(key), matchData); err != nil {
		_ = a.Blobs.Delete(key)
		return err
	}
	return nil
}

// Load returns a stored replay and the match it was recorded from.
func (a *Archive) Load(key string) (*replay.Replay, cfg.MatchConfig, error) {
	if _, err := a.Catalog.Get(key); err != nil {
		return nil, cfg.MatchConfig{}, err
	}
	data, err := a.Blobs.Load(key)
	if err != nil {
		return nil, cfg.MatchConfig{}, err
	}
	r, err := replay.Unmarshal(data)
	if err != nil {
		return nil, cfg.MatchConfig{}, fmt.Errorf("storage: load %s: %w", key, err)
	}
	matchData, err := a.Blobs.Load(matchKey(key))
	if err != nil {
		return nil, cfg.MatchConfig{}, err
	}
	match, err := cfg.ParseMatch(matchData)
	if err != nil {
		return nil, cfg.MatchConfig{}, fmt.Errorf("storage: load %s: match: %w", key, err)
	}
	return r, match, nil
}

// Delete removes a replay from the catalog and the blob store.
func (a *Archive) Delete(key string) error {
	if err := a.Catalog.Remove(key); err != nil {
		return err
	}
	if err := a.Blobs.Delete(key); err != nil {
		return err
	}
	return a.Blobs.Delete(matchKey(key))
}
