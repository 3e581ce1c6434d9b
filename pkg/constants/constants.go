package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	AppKey        ContextKey = "app"
	LoggerKey     ContextKey = "logger"
	RequestStart  ContextKey = "request_start"
	ParamsKey     ContextKey = "params"
	PageContext   ContextKey = "page_ctx"
	LocalizerKey  ContextKey = "localizer"
	LocaleKey     ContextKey = "locale"
	NotifierKey   ContextKey = "notifier"
	RequestIDKey  ContextKey = "request_id"
	NavItemsKey   ContextKey = "nav_items"
	GraphQLClient ContextKey = "graphql_client"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())
