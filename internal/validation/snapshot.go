package validation

import (
	"strings"

	"github.com/horizon60/Horizon60-Backend/internal/api/request"
)

func ValidateCaptureSnapshot(req request.CaptureSnapshotRequest) error {
	errors := make(map[string]string)

	if req.Date != "" {
		if err := ValidateDate(req.Date); err != nil {
			errors["date"] = "must be a YYYY-MM-DD date"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateSnapshot(req request.SnapshotRequest) error {
	errors := make(map[string]string)

	if req.Date == "" {
		errors["date"] = "date is required"
	} else if err := ValidateDate(req.Date); err != nil {
		errors["date"] = "must be a YYYY-MM-DD date"
	}

	for _, line := range req.Accounts {
		if strings.TrimSpace(line.Name) == "" {
			errors["accounts"] = "every account line needs a name"
			break
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
