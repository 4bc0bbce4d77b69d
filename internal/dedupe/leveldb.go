package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

type LevelDBBackend struct {
	storage *hybrid.HybridMap
}

func NewLevelDBBackend() *LevelDBBackend {
	l := &LevelDBBackend{}
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		gologger.Fatal().Msgf("failed to create temp dir for inspector dedupe got: %v", err)
	}
	l.storage = db
	return l
}

func (l *LevelDBBackend) Seen(elem string) bool {
	if _, ok := l.storage.Get(elem); ok {
		return true
	}
	if err := l.storage.Set(elem, nil); err != nil {
		gologger.Error().Msgf("dedupe: leveldb: got %v while writing %v", err, elem)
	}
	return false
}

func (l *LevelDBBackend) Cleanup() {
	_ = l.storage.Close()
}
