package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAPIRequest(ctx context.Context, data APIRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.APIRequestEvent.Create().
		SetSequence(seqNum).
		SetEndpoint(data.Endpoint).
		SetStatus(data.Status).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save api request event: %w", err)
	}
	return nil
}
