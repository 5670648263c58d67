package seventimer

import "fmt"

// Host is the fixed hostname of the 7timer API.
const Host = "www.7timer.info"

// Scheme selects the transport scheme for API requests.
type Scheme string

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// BuildURL maps a validated parameter set to a fully qualified request
// URL of the form <scheme>://www.7timer.info/bin/<product>.php?<query>.
// The product selects the endpoint; every other parameter travels in the
// query string. Values are percent-encoded, although in practice they
// are numeric or simple tokens and the encoding is a no-op.
func BuildURL(scheme Scheme, p *Params) string {
	return fmt.Sprintf("%s://%s/bin/%s.php?%s", scheme, Host, p.Product, p.Query().Encode())
}
