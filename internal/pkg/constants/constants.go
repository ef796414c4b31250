package constants

// Viper configuration keys.
const (
	ViperKeyServerAddr = "server.addr"

	ViperKeyElasticURL            = "elastic.url"
	ViperKeyElasticCartIndex      = "elastic.cart_index"
	ViperKeyElasticProfileIndex   = "elastic.profile_index"
	ViperKeyElasticTimeoutSeconds = "elastic.timeout_seconds"
	ViperKeyElasticMaxRetries     = "elastic.max_retries"

	ViperKeyLocationFile = "location.file"

	ViperKeyWebAddr       = "web.addr"
	ViperKeyWebAPIBaseURL = "web.api_base_url"
)

// Configuration defaults.
const (
	DefaultServerAddr     = ":8080"
	DefaultElasticURL     = "http://localhost:9200"
	DefaultCartIndex      = "context-sepet"
	DefaultProfileIndex   = "context-profile"
	DefaultTimeoutSeconds = 30
	DefaultMaxRetries     = 3
	DefaultLocationFile   = "data/sabitler.json"
	DefaultWebAddr        = ":8090"
	DefaultAPIBaseURL     = "http://localhost:8080"
)

// CtxKeyRequestID is the context key under which the request id is stored.
type ctxKey string

const CtxKeyRequestID ctxKey = "request_id"

// HeaderRequestID is the request id header propagated to clients.
const HeaderRequestID = "X-Request-ID"
