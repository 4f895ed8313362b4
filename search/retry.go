package search

import "github.com/katalvlaran/railplan/core"

// retryStep is the amount by which the time limit is expanded on each failed
// attempt, per the spec's retry-horizon helper.
const retryStep = 20

// WithRetryHorizon wraps Search with the spec's retry-horizon policy: start
// with a tight TMax of DepartFloor + Manhattan(start,target) + max(slack,0) +
// 20; if Target is not reached, expand TMax by 20 and retry; give up once
// TMax reaches horizon (the episode's max_timestep). req.TMax is overwritten
// on each attempt; the caller need not set it.
//
// The retry-horizon loop is the coarsest bound on planning work per the
// spec's concurrency model: it always terminates within O(horizon/20)
// attempts.
func WithRetryHorizon(req Request, slack, horizon int) core.Path {
	extra := slack
	if extra < 0 {
		extra = 0
	}
	dist := req.Start.Manhattan(req.Target)
	tmax := req.DepartFloor + dist + extra + retryStep
	if tmax > horizon {
		tmax = horizon
	}
	if tmax < 0 {
		tmax = 0
	}

	var last core.Path
	for {
		req.TMax = tmax
		path, reached := Search(req)
		last = path
		if reached {
			return path
		}
		if tmax >= horizon {
			break
		}
		tmax += retryStep
		if tmax > horizon {
			tmax = horizon
		}
	}
	return last
}
