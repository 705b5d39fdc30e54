package rnd

import "fmt"

type Config struct {
	Samples int
}

func DefaultConfig() Config {
	return Config{
		Samples: 20000,
	}
}

func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf(
			"количество выборок должно быть > 0 (получено %d)",
			c.Samples,
		)
	}
	return nil
}
