package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinbook/clinbook/internal/api"
)

// clinicList renders the clinic catalog for text output
type clinicList []api.Clinic

func (l clinicList) RenderText() string {
	if len(l) == 0 {
		return "No clinics registered.\n"
	}

	var b strings.Builder
	for _, clinic := range l {
		fmt.Fprintf(&b, "%-4d %s", clinic.ID, clinic.Name)
		if clinic.Specialty != "" {
			fmt.Fprintf(&b, "  [%s]", clinic.Specialty)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// clinicDetail renders a single clinic for text output
type clinicDetail api.Clinic

func (d clinicDetail) RenderText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:      %s\n", d.Name)
	if d.Specialty != "" {
		fmt.Fprintf(&b, "Specialty: %s\n", d.Specialty)
	}
	if d.Address != "" {
		fmt.Fprintf(&b, "Address:   %s\n", d.Address)
	}
	if d.Phone != "" {
		fmt.Fprintf(&b, "Phone:     %s\n", d.Phone)
	}
	if d.Email != "" {
		fmt.Fprintf(&b, "Email:     %s\n", d.Email)
	}
	if d.CNPJ != "" {
		fmt.Fprintf(&b, "CNPJ:      %s\n", d.CNPJ)
	}
	return b.String()
}

var clinicsCmd = &cobra.Command{
	Use:   "clinics",
	Short: "Browse and manage clinics",
}

// clinicsListCmd lists the clinic catalog. Works without a session.
var clinicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered clinics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		clinics, err := app.client.Clinics(cmd.Context())
		if err != nil {
			return err
		}

		formatter, err := app.formatter()
		if err != nil {
			return err
		}
		return formatter.Format(clinicList(clinics))
	},
}

// clinicsShowCmd shows one clinic
var clinicsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a clinic's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid clinic id %q", args[0])
		}

		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		clinic, err := app.client.Clinic(cmd.Context(), id)
		if err != nil {
			return err
		}

		formatter, err := app.formatter()
		if err != nil {
			return err
		}
		return formatter.Format(clinicDetail(*clinic))
	},
}

// clinicsRegisterCmd registers a clinic. The platform accepts clinic
// registration without a session.
var clinicsRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new clinic",
	Long: `Register a clinic with the ClinBook platform.

Examples:
  clinbook clinics register --name "Clinica Vida" --cnpj 00.000.000/0000-00 --email contato@vida.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := clinicFormFromFlags(cmd)
		if err != nil {
			return err
		}

		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		if err := app.client.RegisterClinic(cmd.Context(), form); err != nil {
			return err
		}
		fmt.Println("Clinic registered.")
		return nil
	},
}

// clinicsEditCmd edits an existing clinic record
var clinicsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a clinic record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid clinic id %q", args[0])
		}

		form, err := clinicFormFromFlags(cmd)
		if err != nil {
			return err
		}

		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		if err := app.client.UpdateClinic(cmd.Context(), id, form); err != nil {
			return err
		}
		fmt.Println("Clinic updated.")
		return nil
	},
}

func clinicFormFromFlags(cmd *cobra.Command) (api.ClinicForm, error) {
	name, _ := cmd.Flags().GetString("name")
	cnpj, _ := cmd.Flags().GetString("cnpj")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	address, _ := cmd.Flags().GetString("address")
	specialty, _ := cmd.Flags().GetString("specialty")

	if name == "" {
		return api.ClinicForm{}, fmt.Errorf("--name is required")
	}
	if cnpj == "" {
		return api.ClinicForm{}, fmt.Errorf("--cnpj is required")
	}

	return api.ClinicForm{
		Name:      name,
		CNPJ:      cnpj,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Specialty: specialty,
	}, nil
}

func addClinicFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "clinic name")
	cmd.Flags().String("cnpj", "", "CNPJ company number")
	cmd.Flags().String("email", "", "contact email")
	cmd.Flags().String("phone", "", "contact phone")
	cmd.Flags().String("address", "", "street address")
	cmd.Flags().String("specialty", "", "medical specialty")
}

func init() {
	addClinicFormFlags(clinicsRegisterCmd)
	addClinicFormFlags(clinicsEditCmd)

	clinicsCmd.AddCommand(clinicsListCmd)
	clinicsCmd.AddCommand(clinicsShowCmd)
	clinicsCmd.AddCommand(clinicsRegisterCmd)
	clinicsCmd.AddCommand(clinicsEditCmd)
	rootCmd.AddCommand(clinicsCmd)
}
