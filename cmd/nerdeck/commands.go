package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vytor/nerdeck/internal/ladder"
	"github.com/vytor/nerdeck/internal/models"
)

func newUserCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add [username]",
		Short: "Create a user and print its API token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.Users.CreateUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "created user %s (id %d)\n", user.Username, user.ID)
			fmt.Fprintf(out, "api token: %s\n", user.APIToken)
			return nil
		},
	})
	return cmd
}

func newDeckCmd(c *cli) *cobra.Command {
	var username, description string

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage decks",
	}
	add := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.Users.GetByUsername(cmd.Context(), username)
			if err != nil {
				return err
			}
			deck, err := c.app.Decks.CreateDeck(cmd.Context(), user.ID, args[0], description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created deck %q (id %d)\n", deck.Title, deck.ID)
			return nil
		},
	}
	add.Flags().StringVarP(&username, "user", "u", "", "Owner username")
	add.Flags().StringVar(&description, "description", "", "Deck description")
	_ = add.MarkFlagRequired("user")

	cmd.AddCommand(add)
	return cmd
}

func newCardCmd(c *cli) *cobra.Command {
	var username string
	var deckID int64

	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}
	add := &cobra.Command{
		Use:   "add [front] [back]",
		Short: "Add a card to a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.Users.GetByUsername(cmd.Context(), username)
			if err != nil {
				return err
			}
			card, err := c.app.Decks.AddCard(cmd.Context(), user.ID, deckID, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added card %d to deck %d\n", card.ID, card.DeckID)
			return nil
		},
	}
	add.Flags().StringVarP(&username, "user", "u", "", "Owner username")
	add.Flags().Int64Var(&deckID, "deck", 0, "Deck id")
	_ = add.MarkFlagRequired("user")
	_ = add.MarkFlagRequired("deck")

	cmd.AddCommand(add)
	return cmd
}

func newDecksCmd(c *cli) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "decks",
		Short: "List decks with how many cards are due today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDecks(cmd.Context(), c, cmd.OutOrStdout(), username)
		},
	}
	cmd.Flags().StringVarP(&username, "user", "u", "", "Owner username")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func listDecks(ctx context.Context, c *cli, out io.Writer, username string) error {
	user, err := c.app.Users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	decks, err := c.app.Decks.ListDecks(ctx, user.ID)
	if err != nil {
		return err
	}
	printDecks(out, decks)
	return nil
}

func printDecks(out io.Writer, decks []models.DeckSummary) {
	if len(decks) == 0 {
		fmt.Fprintln(out, "no decks")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCARDS\tDUE")
	for _, d := range decks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", d.ID, d.Title, d.TotalCards, d.DueCards)
	}
	_ = tw.Flush()
}

func newLadderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ladder",
		Short: "Show how many days a right answer schedules at each step",
		Args:  cobra.NoArgs,
		// No database needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			printLadder(cmd.OutOrStdout(), ladder.Rungs())
		},
	}
}

func printLadder(out io.Writer, rungs []int) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tDAYS")
	for step, days := range rungs {
		fmt.Fprintf(tw, "%d\t%d\n", step, days)
	}
	_ = tw.Flush()
}

func newStudyCmd(c *cli) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "study [deck-id]",
		Short: "Study the cards due today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid deck id %q", args[0])
			}
			user, err := c.app.Users.GetByUsername(cmd.Context(), username)
			if err != nil {
				return err
			}

			term := newTerminal()
			defer term.Close()

			s := &studyLoop{
				study:    c.app.Study,
				calendar: c.app.Calendar,
				prompt:   term,
				out:      cmd.OutOrStdout(),
			}
			return s.Run(cmd.Context(), user.ID, deckID)
		},
	}
	cmd.Flags().StringVarP(&username, "user", "u", "", "Username to study as")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
