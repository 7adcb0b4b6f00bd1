package groq

import (
	"fmt"
	"sync"

	"rockguard-srv/config"
	"rockguard-srv/pkg/groq"
)

var (
	instance groq.IGroq
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the Groq client using singleton pattern.
func Connect(cfg config.GroqConfig) (groq.IGroq, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := groq.NewGroq(groq.GroqConfig{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Groq client: %w", e)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// GetClient returns the singleton Groq client instance.
func GetClient() groq.IGroq {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Groq client not initialized. Call Connect() first")
	}
	return instance
}
