// Package timezone provides studio-local time utilities.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Rendering submitted-at stamps for notification emails:
//     display := timezone.FormatStamp(record.Timestamp, constant.DisplayFormat)
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "America/Chicago", "America/New_York"
//
// The timezone is configured via the APP_TIMEZONE environment variable and
// defaults to the studio's local zone. Use standard IANA timezone database
// names for reliable cross-platform compatibility.
package timezone
