package api

import "context"

func (c *Client) ExportLoans(ctx context.Context, filter LoanFilter) ([]byte, error) {
	return c.doRaw(ctx, "/export/loans", filter.values())
}

func (c *Client) ExportDamageReports(ctx context.Context, filter ReportFilter) ([]byte, error) {
	return c.doRaw(ctx, "/export/damage-reports", filter.values())
}
