package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
)

var attorneyCmd = &cobra.Command{
	Use:   "attorney",
	Short: "Manage the filing attorney profile",
	RunE:  runAttorneyShow,
}

var attorneyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the attorney profile",
	Args:  cobra.NoArgs,
	RunE:  runAttorneyShow,
}

var attorneySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update attorney profile fields",
	Long: `Update the attorney profile. Only the given flags change.

Examples:
  kokua attorney set --variant public --name "Jane Roe" --registration 1234
  kokua attorney set --variant private --firm "Roe LLLC" --address1 "1 Main St"`,
	Args: cobra.NoArgs,
	RunE: runAttorneySet,
}

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Manage the client's alternate identity",
	Long: `The alternate identity replaces the scraped client name and contact
details on every document. When any name field is set, the scraped name is
ignored entirely.`,
	RunE: runIdentityShow,
}

var identityShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the alternate identity",
	Args:  cobra.NoArgs,
	RunE:  runIdentityShow,
}

var identitySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update alternate identity fields",
	Args:  cobra.NoArgs,
	RunE:  runIdentitySet,
}

var identityClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the alternate identity",
	Args:  cobra.NoArgs,
	RunE:  runIdentityClear,
}

var warrantCmd = &cobra.Command{
	Use:   "warrant",
	Short: "Manage warrant facts entered for motions to recall",
	RunE:  runWarrantShow,
}

var warrantShowCmd = &cobra.Command{
	Use:   "show [case-number]",
	Short: "Show entered warrant facts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWarrantShow,
}

var warrantSetCmd = &cobra.Command{
	Use:   "set [case-number]",
	Short: "Enter warrant facts for a case",
	Long: `Enter the facts printed on the motion to recall a bench warrant.
Dates are MM/DD/YYYY. Only the given flags change.`,
	Args: cobra.ExactArgs(1),
	RunE: runWarrantSet,
}

var modeCmd = &cobra.Command{
	Use:   "mode [expungement|warrant]",
	Short: "Show or set the tool mode",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMode,
}

// attorneyFlags maps flag names to profile fields.
var attorneyFlags = map[string]func(*domain.AttorneyProfile) *string{
	"name":               func(a *domain.AttorneyProfile) *string { return &a.Name },
	"registration":       func(a *domain.AttorneyProfile) *string { return &a.Registration },
	"head-defender":      func(a *domain.AttorneyProfile) *string { return &a.HeadDefenderName },
	"head-registration":  func(a *domain.AttorneyProfile) *string { return &a.HeadDefenderRegistration },
	"firm":               func(a *domain.AttorneyProfile) *string { return &a.FirmName },
	"address1":           func(a *domain.AttorneyProfile) *string { return &a.Address1 },
	"address2":           func(a *domain.AttorneyProfile) *string { return &a.Address2 },
	"address3":           func(a *domain.AttorneyProfile) *string { return &a.Address3 },
	"address4":           func(a *domain.AttorneyProfile) *string { return &a.Address4 },
	"phone":              func(a *domain.AttorneyProfile) *string { return &a.Telephone },
	"fax":                func(a *domain.AttorneyProfile) *string { return &a.Fax },
	"email":              func(a *domain.AttorneyProfile) *string { return &a.Email },
	"circuit":            func(a *domain.AttorneyProfile) *string { return &a.CircuitOrdinal },
	"signature-location": func(a *domain.AttorneyProfile) *string { return &a.SignatureLocation },
}

// identityFlags maps flag names to alternate identity fields.
var identityFlags = map[string]func(*domain.AlternateIdentity) *string{
	"first":    func(a *domain.AlternateIdentity) *string { return &a.First },
	"middle":   func(a *domain.AlternateIdentity) *string { return &a.Middle },
	"last":     func(a *domain.AlternateIdentity) *string { return &a.Last },
	"address1": func(a *domain.AlternateIdentity) *string { return &a.Address1 },
	"address2": func(a *domain.AlternateIdentity) *string { return &a.Address2 },
	"address3": func(a *domain.AlternateIdentity) *string { return &a.Address3 },
	"phone":    func(a *domain.AlternateIdentity) *string { return &a.Phone },
	"email":    func(a *domain.AlternateIdentity) *string { return &a.Email },
	"dob":      func(a *domain.AlternateIdentity) *string { return &a.DOB },
	"sex":      func(a *domain.AlternateIdentity) *string { return &a.Sex },
}

// warrantFlags maps flag names to warrant detail fields.
var warrantFlags = map[string]func(*domain.WarrantDetails) *string{
	"consultation-date":   func(w *domain.WarrantDetails) *string { return &w.ConsultationDate },
	"consultation-town":   func(w *domain.WarrantDetails) *string { return &w.ConsultationTown },
	"non-appearance-date": func(w *domain.WarrantDetails) *string { return &w.NonAppearanceDate },
	"issue-date":          func(w *domain.WarrantDetails) *string { return &w.WarrantIssueDate },
	"amount":              func(w *domain.WarrantDetails) *string { return &w.WarrantAmount },
}

func init() {
	attorneySetCmd.Flags().String("variant", "", "public or private")
	for _, name := range sortedKeys(attorneyFlags) {
		attorneySetCmd.Flags().String(name, "", "attorney "+name)
	}
	attorneyCmd.AddCommand(attorneyShowCmd)
	attorneyCmd.AddCommand(attorneySetCmd)
	rootCmd.AddCommand(attorneyCmd)

	for _, name := range sortedKeys(identityFlags) {
		identitySetCmd.Flags().String(name, "", "client "+name)
	}
	identityCmd.AddCommand(identityShowCmd)
	identityCmd.AddCommand(identitySetCmd)
	identityCmd.AddCommand(identityClearCmd)
	rootCmd.AddCommand(identityCmd)

	for _, name := range sortedKeys(warrantFlags) {
		warrantSetCmd.Flags().String(name, "", "warrant "+name)
	}
	warrantSetCmd.Flags().Bool("consulted-at-event", false, "client was consulted at a court event")
	warrantCmd.AddCommand(warrantShowCmd)
	warrantCmd.AddCommand(warrantSetCmd)
	rootCmd.AddCommand(warrantCmd)

	rootCmd.AddCommand(modeCmd)
}

func runAttorneyShow(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	a, err := recordService.Attorney(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get attorney profile: %w", err)
	}

	cmd.Println("Attorney Profile")
	cmd.Println("================")
	cmd.Printf("  Variant:        %s\n", a.Variant.Description())
	cmd.Printf("  Name:           %s\n", a.Name)
	cmd.Printf("  Registration:   %s\n", a.Registration)
	if a.Variant == domain.VariantPublicDefender {
		cmd.Printf("  Head defender:  %s (%s)\n", a.HeadDefenderName, a.HeadDefenderRegistration)
	} else {
		cmd.Printf("  Firm:           %s\n", a.FirmName)
		for _, line := range []string{a.Address1, a.Address2, a.Address3, a.Address4} {
			if line != "" {
				cmd.Printf("  Address:        %s\n", line)
			}
		}
		cmd.Printf("  Telephone:      %s\n", a.Telephone)
		cmd.Printf("  Fax:            %s\n", a.Fax)
		cmd.Printf("  Email:          %s\n", a.Email)
	}
	cmd.Printf("  Circuit:        %s\n", a.CircuitOrdinal)
	cmd.Printf("  Signed at:      %s\n", a.SignatureLocation)
	return nil
}

func runAttorneySet(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	a, err := recordService.Attorney(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get attorney profile: %w", err)
	}

	if cmd.Flags().Changed("variant") {
		v, _ := cmd.Flags().GetString("variant") //nolint:errcheck // flag is registered
		a.Variant = domain.PartyVariant(v)
		if !a.Variant.IsValid() {
			return fmt.Errorf("%w: variant %q", domain.ErrInvalidInput, v)
		}
	}
	if !applyFlags(cmd.Flags(), attorneyFlags, &a) && !cmd.Flags().Changed("variant") {
		return errors.New("no fields given")
	}

	if err := recordService.SaveAttorney(cmd.Context(), a); err != nil {
		return fmt.Errorf("failed to save attorney profile: %w", err)
	}
	cmd.Println("Attorney profile saved.")
	return nil
}

func runIdentityShow(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	id, err := recordService.AlternateIdentity(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get alternate identity: %w", err)
	}
	if id.IsZero() {
		cmd.Println("No alternate identity set; scraped names are used.")
		return nil
	}

	cmd.Println("Alternate Identity")
	cmd.Println("==================")
	cmd.Printf("  Name:     %s / %s / %s\n", id.First, id.Middle, id.Last)
	if id.OverridesName() {
		cmd.Println("            (replaces the scraped name)")
	}
	cmd.Printf("  Address:  %s\n", id.AddressLine())
	cmd.Printf("  Phone:    %s\n", id.Phone)
	cmd.Printf("  Email:    %s\n", id.Email)
	cmd.Printf("  DOB:      %s\n", id.DOB)
	cmd.Printf("  Sex:      %s\n", id.Sex)
	return nil
}

func runIdentitySet(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	id, err := recordService.AlternateIdentity(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get alternate identity: %w", err)
	}
	if !applyFlags(cmd.Flags(), identityFlags, &id) {
		return errors.New("no fields given")
	}

	if err := recordService.SaveAlternateIdentity(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to save alternate identity: %w", err)
	}
	cmd.Println("Alternate identity saved.")
	return nil
}

func runIdentityClear(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	if err := recordService.ClearAlternateIdentity(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear alternate identity: %w", err)
	}
	cmd.Println("Alternate identity cleared.")
	return nil
}

func runWarrantShow(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	all, err := recordService.WarrantDetails(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get warrant details: %w", err)
	}

	numbers := sortedKeys(all)
	if len(args) > 0 {
		w, ok := domain.LookupWarrant(all, args[0])
		if !ok {
			return fmt.Errorf("%w: no warrant details for %s", domain.ErrNotFound, args[0])
		}
		numbers = []string{w.CaseNumber}
		all = map[string]domain.WarrantDetails{w.CaseNumber: w}
	}
	if len(numbers) == 0 {
		cmd.Println("No warrant details entered.")
		return nil
	}

	for _, n := range numbers {
		w := all[n]
		cmd.Printf("%s\n", n)
		cmd.Printf("  Consultation:    %s %s\n", w.ConsultationDate, w.ConsultationTown)
		if w.ConsultedAtEvent {
			cmd.Println("                   (at a court event)")
		}
		cmd.Printf("  Non-appearance:  %s\n", w.NonAppearanceDate)
		cmd.Printf("  Warrant issued:  %s\n", w.WarrantIssueDate)
		cmd.Printf("  Amount:          %s\n", w.WarrantAmount)
	}
	return nil
}

func runWarrantSet(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	c, err := recordService.Case(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	all, err := recordService.WarrantDetails(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get warrant details: %w", err)
	}

	w, _ := domain.LookupWarrant(all, c.CaseNumber)
	w.CaseNumber = c.CaseNumber
	changed := applyFlags(cmd.Flags(), warrantFlags, &w)
	if cmd.Flags().Changed("consulted-at-event") {
		w.ConsultedAtEvent, _ = cmd.Flags().GetBool("consulted-at-event") //nolint:errcheck // flag is registered
		changed = true
	}
	if !changed {
		return errors.New("no fields given")
	}

	if err := recordService.SaveWarrantDetails(cmd.Context(), w); err != nil {
		return fmt.Errorf("failed to save warrant details: %w", err)
	}
	cmd.Printf("Warrant details saved for %s.\n", w.CaseNumber)
	return nil
}

func runMode(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	if len(args) == 0 {
		mode, err := recordService.Mode(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read mode: %w", err)
		}
		cmd.Printf("Mode: %s\n", mode)
		return nil
	}

	if err := recordService.SetMode(cmd.Context(), domain.Mode(args[0])); err != nil {
		return err
	}
	cmd.Printf("Mode set to %s.\n", args[0])
	return nil
}

// applyFlags copies every changed flag into its field and reports whether any changed.
func applyFlags[T any](flags *pflag.FlagSet, fields map[string]func(*T) *string, target *T) bool {
	changed := false
	for name, field := range fields {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			continue
		}
		*field(target) = value
		changed = true
	}
	return changed
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
