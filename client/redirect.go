package client

import (
	"github.com/indigo-web/request/errors"
	"github.com/indigo-web/request/http/url"
)

// redirect returns the URL the response points to. The Location may be relative, in which
// case it's resolved against the URL the response was received from.
func redirect(current url.URL, resp Response) (url.URL, error) {
	location, found := resp.Location()
	if !found || len(location) == 0 {
		return url.URL{}, errors.ErrInvalidRedirect
	}

	next, err := url.Resolve(current, location)
	if err != nil {
		return url.URL{}, errors.Wrap(errors.ErrInvalidRedirect, err)
	}

	return next, nil
}
