package config

import "github.com/ayoisaiah/tally/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend %q: must be one of %v",
	}

	errInvalidInterval = &apperr.Error{
		Message: "auto-save interval must be between %d and %d ticks, got %d",
	}

	errEmptyDir = &apperr.Error{
		Message: "storage directory must not be empty",
	}

	errInvalidFileName = &apperr.Error{
		Message: "invalid %s",
	}

	errSameFile = &apperr.Error{
		Message: "the save file and the auto-save file must differ (both are %q)",
	}
)
