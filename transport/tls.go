package transport

import (
	"crypto/tls"
	"time"

	"github.com/indigo-web/request/config"
	"github.com/indigo-web/request/errors"
)

var _ Dialer = new(TLS)

// TLS dials TCP connections and negotiates a TLS session on top of them. The protocol
// version is the best one supported by both sides.
type TLS struct {
	cfg *tls.Config
	TCP
}

func NewTLS(netCfg config.NET, tlsCfg config.TLS) *TLS {
	return &TLS{
		cfg: &tls.Config{
			InsecureSkipVerify: tlsCfg.InsecureSkipVerify,
		},
		TCP: *NewTCP(netCfg),
	}
}

// WithConfig replaces the config used for every handshake. It's mainly useful for tests
// with self-signed certificates.
func (t *TLS) WithConfig(cfg *tls.Config) *TLS {
	t.cfg = cfg
	return t
}

func (t *TLS) Dial(host, addr string) (Stream, error) {
	conn, err := t.dial(addr)
	if err != nil {
		return nil, err
	}

	cfg := t.cfg.Clone()
	if len(cfg.ServerName) == 0 {
		cfg.ServerName = host
	}

	session := tls.Client(conn, cfg)
	if timeout := t.dialer.Timeout; timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(timeout))
	}

	if err = session.Handshake(); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(errors.ErrTLS, err)
	}

	_ = conn.SetDeadline(time.Time{})

	return newClient(session, t.readTimeout, t.writeTimeout), nil
}
