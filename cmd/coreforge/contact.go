package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/coreforge/internal/contact"
)

func sendMessage(cmd *cobra.Command, args []string) error {
	cfg, st, err := setup(cmd)
	if err != nil {
		return err
	}

	var opener contact.Opener = contact.SystemOpener{}
	if printLink {
		opener = contact.PrintOpener{W: os.Stdout}
	}
	form, err := newForm(cfg, st, opener)
	if err != nil {
		return err
	}

	res, err := form.Submit(context.Background(), contact.Params{
		FromName:  fromName,
		FromEmail: fromEmail,
		Subject:   subject,
		Message:   message,
	})
	if errors.Is(err, contact.ErrInvalidMessage) {
		return err
	}
	fmt.Println(res.Text)
	if res.Error != "" {
		fmt.Printf("  %s\n", res.Error)
	}
	if err != nil {
		return err
	}
	if res.Status != contact.StatusOK {
		return fmt.Errorf("message not delivered; write to %s directly", cfg.Contact.To)
	}
	return nil
}

func listOutbox(cmd *cobra.Command, args []string) error {
	_, st, err := setup(cmd)
	if err != nil {
		return err
	}
	results, err := st.Outbox().List()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("outbox is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSTATUS\tVIA\tFROM\tSUBJECT")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s <%s>\t%s\n",
			r.At.Format("2006-01-02 15:04:05"),
			r.Status,
			r.Via,
			r.Params.FromName, r.Params.FromEmail,
			r.Params.Subject,
		)
	}
	return w.Flush()
}
