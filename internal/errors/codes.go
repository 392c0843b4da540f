package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound        ErrorCode = "PROFILE_001"
	ProfileInvalidID       ErrorCode = "PROFILE_002"
	ProfileConsentRequired ErrorCode = "PROFILE_003"
	ProfileInvalidAccount  ErrorCode = "PROFILE_004"
)

// Bank linking error codes (BANK_*)
const (
	BankNotFound      ErrorCode = "BANK_001"
	BankInvalidID     ErrorCode = "BANK_002"
	BankAlreadyLinked ErrorCode = "BANK_003"
)

// Fee analysis error codes (ANALYSIS_*)
const (
	AnalysisNotFound      ErrorCode = "ANALYSIS_001"
	AnalysisQuotaExceeded ErrorCode = "ANALYSIS_002"
	AnalysisNoLedger      ErrorCode = "ANALYSIS_003"
)

// Financial health error codes (HEALTH_*)
const (
	HealthInputsMissing ErrorCode = "HEALTH_001"
)

// Subscription error codes (SUBSCRIPTION_*)
const (
	SubscriptionInvalidPlan ErrorCode = "SUBSCRIPTION_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",

	// Profile errors
	ProfileNotFound:        "Business profile not found",
	ProfileInvalidID:       "Invalid profile ID format",
	ProfileConsentRequired: "Consent is required to store an intake submission",
	ProfileInvalidAccount:  "Account type must be 'personal' or 'business'",

	// Bank errors
	BankNotFound:      "Linked bank not found",
	BankInvalidID:     "Invalid bank ID format",
	BankAlreadyLinked: "This bank account is already linked",

	// Analysis errors
	AnalysisNotFound:      "No fee analysis has been run yet",
	AnalysisQuotaExceeded: "Weekly limit reached (2 free analyses per week)",
	AnalysisNoLedger:      "No bank transactions available to analyze",

	// Health errors
	HealthInputsMissing: "Financial inputs have not been provided yet",

	// Subscription errors
	SubscriptionInvalidPlan: "Plan must be 'free' or 'premium'",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
