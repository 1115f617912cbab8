package logger

import "sync"

var (
	global *Logger
	once   sync.Once
)

// Setup installs the process-wide logger. Safe to call once from main.
func Setup(dev bool) *Logger {
	once.Do(func() {
		if dev {
			global = NewDevelopment()
		} else {
			global = New()
		}
	})
	return global
}

// Get returns the process-wide logger, creating a production one if Setup
// was never called (tests).
func Get() *Logger {
	once.Do(func() {
		global = New()
	})
	return global
}
