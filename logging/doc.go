/*
Package logging provides a leveled, categorized logging facade over zap. The facade filters on a construction-time severity threshold, formats every record with its timestamp and call site, and routes it to a per-category sink. Specialized helpers log outbound http requests and inbound responses at debug. The facade performs no storage, transport or buffering of its own; emission is delegated to the sink and is fire-and-forget, so logging calls never fail observably.
*/
package logging
