package kafka

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/twmb/franz-go/pkg/kgo"
)

var ErrInvalidCA = errors.New("failed to parse CA certificate")

// DialTLSOpt returns a client option dialing brokers over mutual TLS.
//
// All args are the filepaths.
func DialTLSOpt(ca, cert, key string) (kgo.Opt, error) {
	const op = "kafka.DialTLSOpt"

	cfg, err := makeTLSConfig(ca, cert, key)
	if err != nil {
		return nil, opErr(err, op)
	}
	return kgo.DialTLSConfig(cfg), nil
}

func makeTLSConfig(ca, cert, key string) (*tls.Config, error) {
	caCert, err := os.ReadFile(ca)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate file: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, ErrInvalidCA
	}

	clientCert, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		RootCAs:      caCertPool,
		Certificates: []tls.Certificate{clientCert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
