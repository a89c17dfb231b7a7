// Package replay drives the donation and project ledgers from a plain-text script of
// contract calls, one "<action> <pipe-delimited payload>" per line.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"charity_ledger/contract"
	"charity_ledger/donations"
	"charity_ledger/projects"
	"charity_ledger/sdk"
)

// ErrUnknownAction is returned for a script line naming no known action.
var ErrUnknownAction = errors.New("unknown action")

// Outcome is what a single script line produced.
type Outcome struct {
	Line    int
	Action  string
	Success bool
	Output  string
	Code    contract.ErrorCode
}

// String renders the outcome as one line of CLI output.
func (o Outcome) String() string {
	if o.Success {
		return fmt.Sprintf("%d %s ok %s", o.Line, o.Action, o.Output)
	}
	return fmt.Sprintf("%d %s failed %s", o.Line, o.Action, o.Code)
}

// Runner owns a mock host and both ledgers bound to it.
type Runner struct {
	host      *sdk.MockSDK
	owner     sdk.Address
	donations *donations.Ledger
	projects  *projects.Ledger
}

// NewRunner binds fresh ledgers to host with owner as the project ledger owner.
func NewRunner(host *sdk.MockSDK, owner sdk.Address) *Runner {
	return &Runner{
		host:      host,
		owner:     owner,
		donations: donations.New(host),
		projects:  projects.New(host, owner),
	}
}

// Donations exposes the donation ledger for callers that want to inspect it after a run.
func (r *Runner) Donations() *donations.Ledger { return r.donations }

// Projects exposes the project ledger.
func (r *Runner) Projects() *projects.Ledger { return r.projects }

// Run executes every line of src in order. Lines have no length limit, so long notes are
// fine. It stops at the first malformed line and returns the outcomes collected so far
// together with the error.
func (r *Runner) Run(src io.Reader) ([]Outcome, error) {
	var outcomes []Outcome
	reader := bufio.NewReader(src)
	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return outcomes, fmt.Errorf("read script: %w", readErr)
		}
		if raw == "" && readErr != nil {
			return outcomes, nil
		}
		lineNo++

		line := strings.TrimSpace(raw)
		if line != "" && !strings.HasPrefix(line, "#") {
			action, payload, _ := strings.Cut(line, " ")
			out, err := r.Exec(action, payload)
			if err != nil {
				return outcomes, fmt.Errorf("line %d: %s: %w", lineNo, action, err)
			}
			out.Line = lineNo
			outcomes = append(outcomes, out)
		}

		if readErr != nil {
			return outcomes, nil
		}
	}
}

// Exec runs a single action. Contract failures come back as unsuccessful outcomes;
// only malformed input is an error.
func (r *Runner) Exec(action, payload string) (Outcome, error) {
	out := Outcome{Action: action}
	get := splitPayload(payload, 2)

	switch action {
	case "sender":
		addr, err := parseAddressField(get(0))
		if err != nil {
			return out, err
		}
		r.host.SetSender(addr)
		return succeed(out, "sender=%s", addr), nil

	case "height":
		h, err := parseUintField(get(0), "height")
		if err != nil {
			return out, err
		}
		r.host.SetBlockHeight(h)
		return succeed(out, "height=%d", h), nil

	case "reset":
		r.host.Reset()
		r.projects.Init(r.owner)
		return succeed(out, "state cleared"), nil

	case "donate":
		amount, err := parseAmountField(get(0))
		if err != nil {
			return out, err
		}
		r.host.NextTx()
		return fromResult(out, r.donations.Donate(amount, get(1)), "donation"), nil

	case "donations_total":
		return succeed(out, "%s", r.donations.GetTotalDonations()), nil

	case "donor_total":
		addr, err := parseAddressField(get(0))
		if err != nil {
			return out, err
		}
		return succeed(out, "%s", r.donations.GetDonorTotal(addr)), nil

	case "donation_get":
		addr, err := parseAddressField(get(0))
		if err != nil {
			return out, err
		}
		id, err := parseUintField(get(1), "donation id")
		if err != nil {
			return out, err
		}
		rec, ok := r.donations.GetDonationDetails(addr, id)
		if !ok {
			return notFound(out), nil
		}
		return succeed(out, "amount=%s timestamp=%d note=%q", rec.Amount, rec.Timestamp, rec.Note), nil

	case "project_create":
		name := strings.TrimSpace(get(0))
		desc := strings.TrimSpace(get(1))
		r.host.NextTx()
		return fromResult(out, r.projects.CreateProject(name, desc), "project"), nil

	case "project_allocate":
		projectID, err := parseUintField(get(0), "project id")
		if err != nil {
			return out, err
		}
		amount, err := parseAmountField(get(1))
		if err != nil {
			return out, err
		}
		r.host.NextTx()
		return fromResult(out, r.projects.AllocateFunds(projectID, amount), "allocation"), nil

	case "project_get":
		id, err := parseUintField(get(0), "project id")
		if err != nil {
			return out, err
		}
		prj, ok := r.projects.GetProject(id)
		if !ok {
			return notFound(out), nil
		}
		return succeed(out, "name=%q active=%t allocated=%s spent=%s",
			prj.Name, prj.Active, prj.TotalAllocated, prj.TotalSpent), nil

	case "allocation_get":
		id, err := parseUintField(get(0), "allocation id")
		if err != nil {
			return out, err
		}
		alloc, ok := r.projects.GetAllocation(id)
		if !ok {
			return notFound(out), nil
		}
		return succeed(out, "project=%d amount=%s timestamp=%d",
			alloc.ProjectID, alloc.Amount, alloc.Timestamp), nil
	}

	return out, ErrUnknownAction
}

func succeed(out Outcome, format string, args ...any) Outcome {
	out.Success = true
	out.Output = fmt.Sprintf(format, args...)
	return out
}

func notFound(out Outcome) Outcome {
	out.Code = contract.ErrCodeNotFound
	return out
}

func fromResult(out Outcome, res contract.Result, label string) Outcome {
	if !res.Success {
		out.Code = res.Error
		return out
	}
	return succeed(out, "%s=%d", label, res.Value)
}
