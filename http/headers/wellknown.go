package headers

// Header names the client itself reads or writes.
const (
	Host             = "Host"
	Connection       = "Connection"
	Location         = "Location"
	ContentLength    = "Content-Length"
	ContentType      = "Content-Type"
	TransferEncoding = "Transfer-Encoding"
)
