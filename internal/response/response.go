// Package response is the envelope codec: the only place in the server where
// success, failure, and paginated response bodies are assembled.
//
// All constructors are pure — they take the request's correlation id and the
// build version explicitly and touch no shared state beyond the clock.
package response

import (
	"fmt"
	"time"

	"github.com/ruablog/rua-api/internal/apperr"
	"github.com/ruablog/rua-api/models"
)

// nowMillis is swappable in tests.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// Success builds a success envelope with [apperr.CodeSuccess] and the
// standard "Success" message.
func Success(requestID, version string, data any) models.Envelope {
	return success(apperr.CodeSuccess, "Success", requestID, version, data)
}

// Created builds a success envelope with [apperr.CodeCreated], used by
// resource-creating operations.
func Created(requestID, version string, data any) models.Envelope {
	return success(apperr.CodeCreated, "Created", requestID, version, data)
}

func success(code apperr.BusinessCode, message, requestID, version string, data any) models.Envelope {
	return models.Envelope{
		Success:   true,
		Code:      int(code),
		Message:   message,
		Timestamp: nowMillis(),
		RequestID: requestID,
		Data:      data,
		Version:   version,
	}
}

// Failure builds a failure envelope from a classified error. The envelope
// carries only the error's public message and field details; the internal
// cause is left behind for the caller to log.
func Failure(e *apperr.Error, requestID, version string) models.Envelope {
	return models.Envelope{
		Success:   false,
		Code:      int(e.Code()),
		Message:   e.Message(),
		Timestamp: nowMillis(),
		RequestID: requestID,
		Errors:    e.Fields(),
		Version:   version,
	}
}

// Paginated builds a success envelope whose data is one page of items plus
// the pagination descriptor.
//
// Only internal handlers call this constructor, so an invariant violation
// (page < 1, pageSize < 1, more items than pageSize, or total smaller than
// the page) is a programming error and panics instead of producing a
// user-facing failure.
func Paginated[T any](requestID, version string, items []T, total int64, page, pageSize int) models.Envelope {
	if page < 1 || pageSize < 1 {
		panic(fmt.Sprintf("response: invalid pagination page=%d page_size=%d", page, pageSize))
	}
	if len(items) > pageSize {
		panic(fmt.Sprintf("response: %d items exceed page size %d", len(items), pageSize))
	}
	if total < int64(len(items)) {
		panic(fmt.Sprintf("response: total %d smaller than page of %d items", total, len(items)))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return success(apperr.CodeSuccess, "Success", requestID, version, models.PaginatedData[T]{
		List: items,
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
