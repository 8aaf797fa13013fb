package repository

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/joaovbs/sugestor/pkg/model"
)

const (
	TermKeyPrefix = "term:"
	HitKeyFormat  = "hits:%s"
)

// DictionaryRepository persists user-accepted vocabulary between runs,
// plus a per-term hit counter for accepted suggestions. It implements
// engine.Store.
type DictionaryRepository struct {
	DB  *badger.DB
	log *model.Logger
	mu  *sync.Mutex
}

func NewDictionaryRepository(path string, log *model.Logger) (*DictionaryRepository, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &DictionaryRepository{
		DB:  db,
		log: log,
		mu:  new(sync.Mutex),
	}, nil
}

func (dr *DictionaryRepository) AddTerm(term string) error {
	dr.mu.Lock()
	defer dr.mu.Unlock()

	if err := dr.DB.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(TermKeyPrefix+term), nil)
	}); err != nil {
		return fmt.Errorf("failed to store term %q: %w", term, err)
	}
	return nil
}

func (dr *DictionaryRepository) RemoveTerm(term string) error {
	dr.mu.Lock()
	defer dr.mu.Unlock()

	return dr.DB.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(TermKeyPrefix + term)); err != nil {
			return err
		}
		return txn.Delete(fmt.Appendf(nil, HitKeyFormat, term))
	})
}

func (dr *DictionaryRepository) AllTerms() ([]string, error) {
	dr.mu.Lock()
	defer dr.mu.Unlock()

	var terms []string
	err := dr.DB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(TermKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			terms = append(terms, strings.TrimPrefix(key, TermKeyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	dr.log.Debugf("loaded %d custom terms", len(terms))
	return terms, nil
}

func (dr *DictionaryRepository) CountTerms() (int, error) {
	terms, err := dr.AllTerms()
	if err != nil {
		return 0, err
	}
	return len(terms), nil
}

// RecordHit bumps the accepted-suggestion counter for term.
func (dr *DictionaryRepository) RecordHit(term string) error {
	dr.mu.Lock()
	defer dr.mu.Unlock()

	key := fmt.Appendf(nil, HitKeyFormat, term)
	return dr.DB.Update(func(txn *badger.Txn) error {
		count := 0
		item, err := txn.Get(key)
		if err == nil {
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if count, err = strconv.Atoi(string(val)); err != nil {
				return err
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		return txn.Set(key, fmt.Append(nil, count+1))
	})
}

func (dr *DictionaryRepository) GetHits(term string) (int, error) {
	dr.mu.Lock()
	defer dr.mu.Unlock()

	count := 0
	err := dr.DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get(fmt.Appendf(nil, HitKeyFormat, term))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		count, err = strconv.Atoi(string(val))
		return err
	})
	return count, err
}

func (dr *DictionaryRepository) Close() error {
	return dr.DB.Close()
}
