package selfserve

// AuthError reports that the self-serve API rejected the supplied
// credentials with HTTP 401. The caller must re-supply credentials and
// retry explicitly; the client never retries on its own.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "Your credentials were invalid. Please try again."
}
