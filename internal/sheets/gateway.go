package sheets

import (
	"context"
	"fmt"
	"time"

	"ContactForm_SheetsProject/internal/config"
	"ContactForm_SheetsProject/internal/models"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const insertRows = "INSERT_ROWS"

type Options struct {
	SpreadsheetID    string
	Range            string
	ValueInputOption string

	// 0 이면 한 번만 시도
	Retries        int
	RetryBaseDelay time.Duration

	// 0 이면 pacing 없음
	WritesPerMinute int

	Logger *zap.Logger
}

// Gateway appends contact submissions to one range of one spreadsheet.
type Gateway struct {
	service *sheetsapi.Service
	opts    Options
	limiter *rate.Limiter
	log     *zap.Logger
	sleep   func(context.Context, time.Duration) error
}

// NewGateway authenticates with the configured service account.
func NewGateway(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Gateway, error) {
	service, err := NewService(ctx, Credentials{
		ClientEmail: cfg.GoogleClientEmail,
		PrivateKey:  cfg.GooglePrivateKey,
	})
	if err != nil {
		return nil, err
	}
	return NewWithService(service, Options{
		SpreadsheetID:    cfg.GoogleSheetID,
		Range:            cfg.SheetRange,
		ValueInputOption: cfg.ValueInputOption,
		Retries:          cfg.AppendRetries,
		RetryBaseDelay:   cfg.RetryBaseDelay,
		WritesPerMinute:  cfg.WritesPerMinute,
		Logger:           log,
	}), nil
}

// NewWithService wraps an already built Sheets service.
func NewWithService(service *sheetsapi.Service, opts Options) *Gateway {
	if opts.Range == "" {
		opts.Range = config.DefaultSheetRange
	}
	if opts.ValueInputOption == "" {
		opts.ValueInputOption = config.DefaultValueInputOption
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	g := &Gateway{
		service: service,
		opts:    opts,
		log:     opts.Logger,
		sleep:   sleepContext,
	}
	if opts.WritesPerMinute > 0 {
		g.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.WritesPerMinute)), 1)
	}
	return g
}

// AppendRow writes one row [name, email, phone, message]. There is no
// idempotency key, so calling it twice appends two rows.
func (g *Gateway) AppendRow(ctx context.Context, sub models.Submission) (*models.AppendConfirmation, error) {
	var lastErr *Error
	for attempt := 0; attempt <= g.opts.Retries; attempt++ {
		if attempt > 0 {
			delay := backoff(g.opts.RetryBaseDelay, attempt)
			g.log.Warn("Gateway.AppendRow(): retrying append",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(lastErr))
			if err := g.sleep(ctx, delay); err != nil {
				cause := &Error{
					Kind:   classify("append", err).Kind,
					Op:     "append",
					Status: lastErr.Status,
					Err:    fmt.Errorf("%w (last attempt: %w)", err, lastErr),
				}
				g.log.Error("Gateway.AppendRow(): retry aborted", zap.String("kind", string(cause.Kind)), zap.Error(cause))
				return nil, cause
			}
		}

		conf, err := g.appendOnce(ctx, sub)
		if err == nil {
			g.log.Info("Gateway.AppendRow(): row appended",
				zap.String("updated_range", conf.UpdatedRange),
				zap.Int64("updated_rows", conf.UpdatedRows))
			return conf, nil
		}

		lastErr = classify("append", err)
		if !lastErr.Retryable() || ctx.Err() != nil {
			break
		}
	}
	g.log.Error("Gateway.AppendRow(): append failed", zap.String("kind", string(lastErr.Kind)), zap.Error(lastErr))
	return nil, lastErr
}

func (g *Gateway) appendOnce(ctx context.Context, sub models.Submission) (*models.AppendConfirmation, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, &Error{Kind: KindRemoteUnavailable, Op: "pace", Err: err}
		}
	}

	values := &sheetsapi.ValueRange{
		Values: [][]interface{}{sub.Row()},
	}
	resp, err := g.service.Spreadsheets.Values.
		Append(g.opts.SpreadsheetID, g.opts.Range, values).
		ValueInputOption(g.opts.ValueInputOption).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return toConfirmation(resp), nil
}

func toConfirmation(resp *sheetsapi.AppendValuesResponse) *models.AppendConfirmation {
	conf := &models.AppendConfirmation{
		SpreadsheetID: resp.SpreadsheetId,
		TableRange:    resp.TableRange,
	}
	if u := resp.Updates; u != nil {
		conf.UpdatedRange = u.UpdatedRange
		conf.UpdatedRows = u.UpdatedRows
		conf.UpdatedColumns = u.UpdatedColumns
		conf.UpdatedCells = u.UpdatedCells
	}
	return conf
}
