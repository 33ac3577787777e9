package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danreyes/reckon/internal/errors"
	"github.com/danreyes/reckon/internal/history"
	"github.com/danreyes/reckon/internal/logging"
	"github.com/danreyes/reckon/internal/model"
	"github.com/danreyes/reckon/internal/parser"
	"github.com/danreyes/reckon/internal/runtime"
	"github.com/danreyes/reckon/internal/storage"
	"github.com/danreyes/reckon/internal/validate"
)

// shellCmd starts an interactive ledger session. All mutations made inside
// the session go through a single undo/redo manager, so they can be reverted
// until the session ends.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session with undo/redo",
	Long: `Start an interactive ledger session. Every add, delete and update made
in the session is reversible with undo/redo. History is bounded and does
not survive the session.

Commands inside the shell:
  add <project> <kind> <amount> [@date] [note...]
  delete <id> [id...]
  update <id> <field>=<value> [...]
  list [project]
  undo | redo | history | clear
  help | quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newSession(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		return s.run()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// session holds the state of one interactive shell run.
type session struct {
	ctx     *runtime.Context
	mgr     *history.Manager
	scanner *bufio.Scanner
	out     io.Writer
	done    bool
}

func newSession(ctx *runtime.Context, in io.Reader, out io.Writer) *session {
	s := &session{
		ctx:     ctx,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	s.mgr = ctx.NewManager(s.confirm)
	return s
}

// confirm asks a y/N question on the session's input. Anything other than
// an explicit yes declines.
func (s *session) confirm(message string) bool {
	fmt.Fprintf(s.out, "%s [y/N]: ", message)
	if !s.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(s.scanner.Text()))
	return answer == "y" || answer == "yes"
}

func (s *session) run() error {
	cli := s.ctx.CLIFormatter()
	cli.Title("Reckon shell")
	cli.Muted("Type 'help' for commands, 'quit' to leave.")

	for !s.done {
		fmt.Fprint(s.out, "> ")
		if !s.scanner.Scan() {
			break
		}
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		if err := s.dispatch(line); err != nil {
			cli.Error(err.Error())
			if suggestion := errors.Suggestion(err); suggestion != "" {
				cli.Muted("  " + suggestion)
			}
		}
	}
	return s.scanner.Err()
}

func (s *session) dispatch(line string) error {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case "add":
		return s.cmdAdd(args)
	case "delete", "rm":
		return s.cmdDelete(args)
	case "update":
		return s.cmdUpdate(args)
	case "list", "ls":
		return s.cmdList(args)
	case "undo":
		return s.cmdUndo()
	case "redo":
		return s.cmdRedo()
	case "history":
		return s.cmdHistory()
	case "clear":
		s.mgr.Clear()
		s.ctx.CLIFormatter().Success("History cleared")
		return nil
	case "help":
		s.printHelp()
		return nil
	case "quit", "exit", "q":
		s.done = true
		return nil
	default:
		return errors.NewUserError(
			fmt.Sprintf("unknown command %q", name),
			"Type 'help' to see available commands")
	}
}

// cmdAdd records a new transaction.
// Usage: add <project> <kind> <amount> [@date] [note...]
func (s *session) cmdAdd(args []string) error {
	if len(args) < 3 {
		return errors.NewUserError("usage: add <project> <kind> <amount> [@date] [note...]",
			"Example: add casa expense 1500.00 @yesterday roof repair")
	}

	projectSID, kindArg, amountArg := args[0], args[1], args[2]
	rest := args[3:]

	if err := validate.SID(projectSID); err != nil {
		return err
	}
	exists, err := s.ctx.ProjectRepo.Exists(projectSID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewUserErrorWithField("project", projectSID,
			"project does not exist",
			fmt.Sprintf("Create it first: reckon project add %s \"Name\"", projectSID))
	}

	kind := model.Kind(kindArg)
	if kind != model.KindIncome && kind != model.KindExpense {
		return errors.NewUserErrorWithField("kind", kindArg,
			"kind must be 'income' or 'expense'", "")
	}

	amount, err := parser.ParseAmount(amountArg)
	if err != nil {
		return err
	}

	dateArg := ""
	if len(rest) > 0 && strings.HasPrefix(rest[0], "@") {
		dateArg = strings.TrimPrefix(rest[0], "@")
		rest = rest[1:]
	}
	date, err := parser.ParseDate(dateArg)
	if err != nil {
		return err
	}

	tx := model.NewTransaction(projectSID, date, amount, kind, strings.Join(rest, " "))
	if err := validate.Struct(tx); err != nil {
		return err
	}

	cmd := history.NewCreateTransaction(s.ctx.TransactionRepo, tx, logging.Logger())
	if !s.mgr.Execute(cmd) {
		return errors.NewSystemError("could not record transaction", nil)
	}

	cli := s.ctx.CLIFormatter()
	cli.Success("Recorded " + tx.Summary())
	cli.Muted("  id: " + shortID(cmd.Key()))
	return nil
}

// cmdDelete removes one or more transactions. Several ids are grouped into
// one bulk operation so a single undo restores all of them.
func (s *session) cmdDelete(args []string) error {
	if len(args) == 0 {
		return errors.NewUserError("usage: delete <id> [id...]",
			"Use 'list' to see transaction ids")
	}

	txs := make([]*model.Transaction, 0, len(args))
	for _, id := range args {
		tx, err := s.resolve(id)
		if err != nil {
			return err
		}
		txs = append(txs, tx)
	}

	cli := s.ctx.CLIFormatter()
	if len(txs) == 1 {
		cmd := history.NewDeleteTransaction(s.ctx.TransactionRepo, txs[0], logging.Logger())
		if !s.mgr.Execute(cmd) {
			return errors.NewSystemError("could not delete transaction", nil)
		}
		cli.Success("Deleted " + txs[0].Summary())
		return nil
	}

	commands := make([]history.Command, len(txs))
	for i, tx := range txs {
		commands[i] = history.NewDeleteTransaction(s.ctx.TransactionRepo, tx, logging.Logger())
	}
	batch := history.NewBatch(commands, fmt.Sprintf("Delete %d transactions", len(txs)), logging.Logger())
	if !s.mgr.Execute(batch) {
		return errors.NewSystemError("bulk delete failed, changes rolled back", nil)
	}
	cli.Success(fmt.Sprintf("Deleted %d transactions", len(txs)))
	return nil
}

// cmdUpdate edits fields of an existing transaction.
// Usage: update <id> <field>=<value> [...]  with fields amount, kind, date, note.
func (s *session) cmdUpdate(args []string) error {
	if len(args) < 2 {
		return errors.NewUserError("usage: update <id> <field>=<value> [...]",
			"Fields: amount, kind, date, note. Example: update 3f2a amount=120.50")
	}

	before, err := s.resolve(args[0])
	if err != nil {
		return err
	}

	after := *before
	for i := 1; i < len(args); i++ {
		field, value, found := strings.Cut(args[i], "=")
		if !found {
			return errors.NewUserError(fmt.Sprintf("expected <field>=<value>, got %q", args[i]), "")
		}
		switch field {
		case "amount":
			amount, err := parser.ParseAmount(value)
			if err != nil {
				return err
			}
			after.Amount = amount
		case "kind":
			kind := model.Kind(value)
			if kind != model.KindIncome && kind != model.KindExpense {
				return errors.NewUserErrorWithField("kind", value,
					"kind must be 'income' or 'expense'", "")
			}
			after.Kind = kind
		case "date":
			date, err := parser.ParseDate(value)
			if err != nil {
				return err
			}
			after.Date = date
		case "note":
			// The note may contain spaces; everything after note= belongs to it.
			after.Note = strings.Join(append([]string{value}, args[i+1:]...), " ")
			i = len(args)
		default:
			return errors.NewUserErrorWithField("field", field,
				"unknown field", "Fields: amount, kind, date, note")
		}
	}

	if err := validate.Struct(&after); err != nil {
		return err
	}

	cmd := history.NewUpdateTransaction(s.ctx.TransactionRepo, before, &after, logging.Logger())
	if !s.mgr.Execute(cmd) {
		return errors.NewSystemError("could not update transaction", nil)
	}
	s.ctx.CLIFormatter().Success("Updated " + after.Summary())
	return nil
}

func (s *session) cmdList(args []string) error {
	var (
		txs []*model.Transaction
		err error
	)
	if len(args) > 0 {
		txs, err = s.ctx.TransactionRepo.ListByProject(args[0])
	} else {
		txs, err = s.ctx.TransactionRepo.List()
	}
	if err != nil {
		return err
	}

	cli := s.ctx.CLIFormatter()
	if len(txs) == 0 {
		cli.Muted("No transactions")
		return nil
	}
	for _, tx := range txs {
		cli.PrintTransaction(tx)
	}
	return nil
}

func (s *session) cmdUndo() error {
	cli := s.ctx.CLIFormatter()
	if !s.mgr.CanUndo() {
		cli.Warning("Nothing to undo")
		return nil
	}
	description := s.mgr.UndoDescription()
	if !s.mgr.Undo() {
		cli.Warning("Undo did not complete: " + description)
		return nil
	}
	cli.Success("Undid: " + description)
	return nil
}

func (s *session) cmdRedo() error {
	cli := s.ctx.CLIFormatter()
	if !s.mgr.CanRedo() {
		cli.Warning("Nothing to redo")
		return nil
	}
	description := s.mgr.RedoDescription()
	if !s.mgr.Redo() {
		cli.Warning("Redo did not complete: " + description)
		return nil
	}
	cli.Success("Redid: " + description)
	return nil
}

func (s *session) cmdHistory() error {
	cli := s.ctx.CLIFormatter()
	undo, redo := s.mgr.History()

	cli.Title(fmt.Sprintf("Undoable (%d)", len(undo)))
	if len(undo) == 0 {
		cli.Muted("  (empty)")
	}
	// Newest first, matching the order undo would replay.
	for i := len(undo) - 1; i >= 0; i-- {
		fmt.Fprintf(s.out, "  %d. %s\n", len(undo)-i, undo[i])
	}

	cli.Title(fmt.Sprintf("Redoable (%d)", len(redo)))
	if len(redo) == 0 {
		cli.Muted("  (empty)")
	}
	for i := len(redo) - 1; i >= 0; i-- {
		fmt.Fprintf(s.out, "  %d. %s\n", len(redo)-i, redo[i])
	}
	return nil
}

func (s *session) printHelp() {
	fmt.Fprint(s.out, `Commands:
  add <project> <kind> <amount> [@date] [note...]   Record a transaction
  delete <id> [id...]                               Delete transactions (bulk = one undo step)
  update <id> <field>=<value> [...]                 Edit amount, kind, date or note
  list [project]                                    List transactions
  undo                                              Revert the last operation
  redo                                              Reapply the last undone operation
  history                                           Show the undo/redo stacks
  clear                                             Drop all session history
  quit                                              Leave the shell

Ids may be abbreviated to any unique suffix shown by 'list'.
`)
	if s.mgr.CanUndo() {
		s.ctx.CLIFormatter().Muted("Next undo: " + s.mgr.UndoDescription())
	}
}

// resolve finds a transaction by full key or unique key suffix.
func (s *session) resolve(id string) (*model.Transaction, error) {
	tx, err := s.ctx.TransactionRepo.Get(id)
	if err == nil {
		return tx, nil
	}
	if !storage.IsErrKeyNotFound(err) {
		return nil, err
	}

	all, err := s.ctx.TransactionRepo.List()
	if err != nil {
		return nil, err
	}
	var matches []*model.Transaction
	for _, candidate := range all {
		if strings.HasSuffix(candidate.Key, id) {
			matches = append(matches, candidate)
		}
	}
	switch len(matches) {
	case 0:
		return nil, errors.NewUserErrorWithField("id", id,
			"no transaction with this id",
			"Use 'list' to see transaction ids")
	case 1:
		return matches[0], nil
	default:
		logging.Logger().Debug("ambiguous transaction id",
			slog.String("id", id), slog.Int(logging.KeyCount, len(matches)))
		return nil, errors.NewUserErrorWithField("id", id,
			fmt.Sprintf("id matches %d transactions", len(matches)),
			"Type more characters of the id")
	}
}

// shortID returns the trailing portion of a key for display.
func shortID(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[len(key)-8:]
}
