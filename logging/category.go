package logging

// Category classifies a log record's subject area. It is used solely to
// select and label the sink the record is routed to; categories carry no
// ordering and play no part in severity filtering.
type Category string

const (
	CategoryNetworking     Category = "networking"
	CategoryUI             Category = "ui"
	CategoryAuthentication Category = "authentication"
	CategoryDatabase       Category = "database"
	CategoryAnalytics      Category = "analytics"
	CategoryErrorHandling  Category = "errorHandling"
	CategoryPerformance    Category = "performance"
	CategoryLifecycle      Category = "lifecycle"
	CategoryConfiguration  Category = "configuration"
	CategoryDebug          Category = "debug"
)

// Categories returns every category a facade builds a sink for.
func Categories() []Category {
	return []Category{
		CategoryNetworking,
		CategoryUI,
		CategoryAuthentication,
		CategoryDatabase,
		CategoryAnalytics,
		CategoryErrorHandling,
		CategoryPerformance,
		CategoryLifecycle,
		CategoryConfiguration,
		CategoryDebug,
	}
}

func (c Category) String() string {
	return string(c)
}
