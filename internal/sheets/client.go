/**
* Name: 			client.go
* Description: 		서비스 계정으로 Google Sheets API 클라이언트 생성
* Workflow: 		private key 검증, JWT token source 생성, sheets.Service 생성
 */

package sheets

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

var Scopes = []string{
	"https://www.googleapis.com/auth/drive",
	"https://www.googleapis.com/auth/drive.file",
	sheetsapi.SpreadsheetsScope,
}

type Credentials struct {
	ClientEmail string
	PrivateKey  string
}

// NewService authenticates as the service account and returns a Sheets client.
// Nothing is fetched here; the first token request happens on the first append.
func NewService(ctx context.Context, creds Credentials, opts ...option.ClientOption) (*sheetsapi.Service, error) {
	if creds.ClientEmail == "" {
		return nil, errors.New("NewService(): service account email is empty")
	}
	if err := checkPrivateKey([]byte(creds.PrivateKey)); err != nil {
		return nil, fmt.Errorf("NewService(): %w", err)
	}

	jwtConfig := &jwt.Config{
		Email:      creds.ClientEmail,
		PrivateKey: []byte(creds.PrivateKey),
		Scopes:     Scopes,
		TokenURL:   google.JWTTokenURL,
	}
	ts := oauth2.ReuseTokenSource(nil, classifiedTokenSource{src: jwtConfig.TokenSource(ctx)})

	opts = append([]option.ClientOption{option.WithHTTPClient(oauth2.NewClient(ctx, ts))}, opts...)
	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewService(): failed to create sheets service: %w", err)
	}
	return service, nil
}

type classifiedTokenSource struct {
	src oauth2.TokenSource
}

func (s classifiedTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, &tokenError{err: err}
	}
	return tok, nil
}

// PKCS#8 가 기본, 오래된 키는 PKCS#1
func checkPrivateKey(key []byte) error {
	block, _ := pem.Decode(key)
	if block == nil {
		return errors.New("private key is not PEM encoded")
	}
	if _, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		return nil
	}
	if _, err := x509.ParsePKCS1PrivateKey(block.Bytes); err != nil {
		return fmt.Errorf("private key is neither PKCS#8 nor PKCS#1: %w", err)
	}
	return nil
}
