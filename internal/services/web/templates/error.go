package templates

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	appErrorPageTitleNotFoundKey  = "error.page_title_not_found"
	appErrorPageTitleServerErrKey = "error.page_title_server_error"
	appErrorHeadingNotFoundKey    = "error.title_not_found"
	appErrorHeadingServerErrKey   = "error.title_server_error"
	appErrorMessageNotFoundKey    = "error.message_not_found"
	appErrorMessageServerErrKey   = "error.message_server_error"
	appErrorBackHomeKey           = "error.back_home"
)

// AppErrorPageTitle returns the browser page title for error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AppErrorState renders the localized error body with a link home. A
// non-empty message replaces the default text for the status.
func AppErrorState(statusCode int, homeHref, message string, loc Localizer) templ.Component {
	status := normalizeAppErrorStatus(statusCode)
	if strings.TrimSpace(message) == "" {
		message = appErrorMessage(status, loc)
	}
	return appErrorState(status, appErrorHeading(status, loc), message, T(loc, appErrorBackHomeKey), homeHref)
}
