// Package domain contains application usecases orchestrating domain logic by sync.
package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/BotDogs4645/theLAW/internal/entities"
	"github.com/BotDogs4645/theLAW/internal/grantapi"
	"github.com/BotDogs4645/theLAW/internal/reconcile"
	"github.com/BotDogs4645/theLAW/internal/rolemap"
)

// SyncRoles reconciles every linked identity's guild roles against the roster.
// Structural failures (invalid role map, store unreachable) return an error
// before any mutation; everything after that is collected into the report.
// Per-identity failures never abort the pass.
func (u *Usecase) SyncRoles(ctx context.Context) (entities.SyncReport, error) {
	ctx, cancel := withTimeout(ctx, u.syncCfg.PassTimeout)
	defer cancel()

	if err := rolemap.Validate(u.roleMap); err != nil {
		return entities.SyncReport{}, err
	}

	identities, err := u.repo.ListLinkedIdentities(ctx)
	if err != nil {
		return entities.SyncReport{}, fmt.Errorf("list linked identities: %w", err)
	}

	members, err := u.repo.ListMembers(ctx)
	if err != nil {
		return entities.SyncReport{}, fmt.Errorf("snapshot roster: %w", err)
	}
	rosterByEmail := reconcile.RosterByEmail(members)

	u.log.Infow("sync started",
		"identities", len(identities),
		"roster_size", len(members),
		"workers", u.syncCfg.Workers,
	)

	// one limiter shared by all workers keeps the aggregate Discord call
	// rate bounded
	limiter := rate.NewLimiter(rate.Limit(u.syncCfg.RateLimit), u.syncCfg.RateBurst)

	var (
		mu     sync.Mutex
		report entities.SyncReport
	)

	g := errgroup.Group{}
	g.SetLimit(u.syncCfg.Workers)

	for _, identity := range identities {
		// stop dispatching once cancelled; in-flight workers finish and the
		// partial report is still returned
		if ctx.Err() != nil {
			report.Stopped = true
			break
		}

		identity := identity
		g.Go(func() error {
			detail := u.syncIdentity(ctx, identity, rosterByEmail, limiter)

			mu.Lock()
			defer mu.Unlock()
			report.Total++
			switch detail.Outcome {
			case entities.OutcomeApplied:
				report.Applied++
			case entities.OutcomeUnchanged:
				report.Unchanged++
			case entities.OutcomePartial:
				report.Partial++
			case entities.OutcomeUnmatched:
				report.Unmatched++
			case entities.OutcomeFailed:
				report.Failed++
			}
			if len(report.Details) < u.syncCfg.ReportDetails {
				report.Details = append(report.Details, detail)
			}
			return nil
		})
	}

	_ = g.Wait()

	u.log.Infow("sync finished",
		"total", report.Total,
		"applied", report.Applied,
		"unchanged", report.Unchanged,
		"partial_failure", report.Partial,
		"unmatched", report.Unmatched,
		"failed", report.Failed,
		"stopped", report.Stopped,
	)
	return report, nil
}

// syncIdentity reconciles one identity. Held roles come fresh from the guild
// every pass; the diff only ever touches roles inside the managed set.
func (u *Usecase) syncIdentity(
	ctx context.Context,
	identity entities.LinkedIdentity,
	rosterByEmail map[string]entities.MemberRecord,
	limiter *rate.Limiter,
) entities.SyncDetail {
	detail := entities.SyncDetail{
		DiscordID: identity.DiscordID,
		Email:     identity.Email,
	}

	var held []string
	err := u.callWithRetry(ctx, limiter, func(ctx context.Context) error {
		var fetchErr error
		held, fetchErr = u.grants.HeldRoles(ctx, identity.DiscordID)
		return fetchErr
	})
	if err != nil {
		u.log.Warnw("held roles fetch failed", "discord_id", identity.DiscordID, "error", err)
		detail.Outcome = entities.OutcomeFailed
		detail.Error = err.Error()
		return detail
	}

	diff, err := reconcile.ComputeDiff(identity, rosterByEmail, u.roleMap, held)
	if errors.Is(err, entities.ErrUnmatched) {
		// no roster record: leave every role alone, including verified
		detail.Outcome = entities.OutcomeUnmatched
		return detail
	}

	if diff.Empty() {
		detail.Outcome = entities.OutcomeUnchanged
		return detail
	}

	// add/remove are independent calls with no atomicity across them; the
	// detail records exactly which ones landed
	for _, roleID := range diff.ToAdd {
		roleID := roleID
		err := u.callWithRetry(ctx, limiter, func(ctx context.Context) error {
			return u.grants.AddRole(ctx, identity.DiscordID, roleID)
		})
		if err != nil {
			u.log.Warnw("add role failed", "discord_id", identity.DiscordID, "role_id", roleID, "error", err)
			detail.FailedAdd = append(detail.FailedAdd, roleID)
			continue
		}
		detail.Added = append(detail.Added, roleID)
	}
	for _, roleID := range diff.ToRemove {
		roleID := roleID
		err := u.callWithRetry(ctx, limiter, func(ctx context.Context) error {
			return u.grants.RemoveRole(ctx, identity.DiscordID, roleID)
		})
		if err != nil {
			u.log.Warnw("remove role failed", "discord_id", identity.DiscordID, "role_id", roleID, "error", err)
			detail.FailedRem = append(detail.FailedRem, roleID)
			continue
		}
		detail.Removed = append(detail.Removed, roleID)
	}

	if len(detail.FailedAdd) > 0 || len(detail.FailedRem) > 0 {
		detail.Outcome = entities.OutcomePartial
	} else {
		detail.Outcome = entities.OutcomeApplied
	}
	return detail
}

// callWithRetry runs one external call under the shared limiter, retrying
// transient failures with exponential backoff. Permanent failures and context
// cancellation stop immediately.
func (u *Usecase) callWithRetry(ctx context.Context, limiter *rate.Limiter, call func(context.Context) error) error {
	operation := func() error {
		if err := limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		if err := call(ctx); err != nil {
			if grantapi.IsTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = u.syncCfg.BackoffInitial

	return backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(u.syncCfg.MaxRetries)), ctx))
}
