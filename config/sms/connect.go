package sms

import (
	"fmt"
	"sync"

	"rockguard-srv/config"
	"rockguard-srv/pkg/sms"
)

var (
	instance sms.ISMS
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the SMS gateway client using singleton pattern.
func Connect(cfg config.SMSConfig) (sms.ISMS, error) {
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
		client, e := sms.New(sms.SMSConfig{
			GatewayURL:   cfg.GatewayURL,
			APIKey:       cfg.APIKey,
			MaxBatchSize: cfg.MaxBatchSize,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize SMS gateway client: %w", e)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// GetClient returns the singleton SMS gateway client instance.
func GetClient() sms.ISMS {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("SMS gateway client not initialized. Call Connect() first")
	}
	return instance
}
