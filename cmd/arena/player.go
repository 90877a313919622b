package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arena/internal/domain/player"
	arenaerr "github.com/KirkDiggler/arena/internal/errors"
	playerservice "github.com/KirkDiggler/arena/internal/services/player"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Manage players",
	Long: `Create players, cast spells and revive them. Players are stored in Redis
when ARENA_REDIS_URL is set and only live for the command otherwise`,
}

var playerCreateCmd = &cobra.Command{
	Use:   "create [flags]",
	Short: "Create a player",
	Args:  cobra.NoArgs,
	RunE:  runPlayerCreate,
}

var playerGetCmd = &cobra.Command{
	Use:   "get player-id",
	Short: "Show a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerGet,
}

var playerListCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "List an owner's players",
	Args:  cobra.NoArgs,
	RunE:  runPlayerList,
}

var playerReviveCmd = &cobra.Command{
	Use:   "revive player-id",
	Short: "Revive a dead player",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerRevive,
}

var playerCastCmd = &cobra.Command{
	Use:   "cast player-id cost",
	Short: "Cast a spell, paying with mana or health",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlayerCast,
}

var playerDeleteCmd = &cobra.Command{
	Use:   "delete player-id",
	Short: "Delete a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerDelete,
}

func init() {
	playerCreateCmd.Flags().String("owner", "", "owner ID (required)")
	playerCreateCmd.Flags().String("name", "", "player name (required)")
	playerCreateCmd.Flags().Uint32("health", player.ReviveHealth, "starting health")
	playerCreateCmd.Flags().Uint32("level", 1, "starting level")
	playerCreateCmd.Flags().Uint32("mana", 0, "starting mana; omit for a player without a mana pool")
	_ = playerCreateCmd.MarkFlagRequired("owner")
	_ = playerCreateCmd.MarkFlagRequired("name")

	playerListCmd.Flags().String("owner", "", "owner ID (required)")
	_ = playerListCmd.MarkFlagRequired("owner")

	playerCmd.AddCommand(playerCreateCmd)
	playerCmd.AddCommand(playerGetCmd)
	playerCmd.AddCommand(playerListCmd)
	playerCmd.AddCommand(playerReviveCmd)
	playerCmd.AddCommand(playerCastCmd)
	playerCmd.AddCommand(playerDeleteCmd)
}

func runPlayerCreate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	input := &playerservice.CreatePlayerInput{}

	var err error
	if input.OwnerID, err = flags.GetString("owner"); err != nil {
		return fmt.Errorf("failed to get owner flag: %w", err)
	}
	if input.Name, err = flags.GetString("name"); err != nil {
		return fmt.Errorf("failed to get name flag: %w", err)
	}
	if input.Health, err = flags.GetUint32("health"); err != nil {
		return fmt.Errorf("failed to get health flag: %w", err)
	}
	if input.Level, err = flags.GetUint32("level"); err != nil {
		return fmt.Errorf("failed to get level flag: %w", err)
	}
	if flags.Changed("mana") {
		mana, err := flags.GetUint32("mana")
		if err != nil {
			return fmt.Errorf("failed to get mana flag: %w", err)
		}
		input.Mana = player.ManaPool(mana)
	}

	svc, cleanup, err := newPlayerService(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := svc.CreatePlayer(cmd.Context(), input)
	if err != nil {
		return err
	}

	return printPlayer(cmd.OutOrStdout(), p)
}

func runPlayerGet(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newPlayerService(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := svc.GetPlayer(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return printPlayer(cmd.OutOrStdout(), p)
}

func runPlayerList(cmd *cobra.Command, _ []string) error {
	ownerID, err := cmd.Flags().GetString("owner")
	if err != nil {
		return fmt.Errorf("failed to get owner flag: %w", err)
	}

	svc, cleanup, err := newPlayerService(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	list, err := svc.ListPlayers(cmd.Context(), ownerID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d players:\n", len(list))
	for _, p := range list {
		if err := printPlayer(out, p); err != nil {
			return err
		}
	}
	return nil
}

func runPlayerRevive(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newPlayerService(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := svc.RevivePlayer(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s has been revived\n", p.Name)
	return printPlayer(cmd.OutOrStdout(), p)
}

func runPlayerCast(cmd *cobra.Command, args []string) error {
	cost, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return arenaerr.InvalidArgumentf("invalid spell cost '%s'", args[1]).
			WithMeta("cost", args[1])
	}

	svc, cleanup, err := newPlayerService(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.CastSpell(cmd.Context(), args[0], uint32(cost))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Damage > 0 {
		color.New(color.FgMagenta).Fprintf(out, "%s dealt %d damage\n", result.Player.Name, result.Damage)
	} else {
		color.New(color.FgYellow).Fprintf(out, "%s's spell fizzled\n", result.Player.Name)
	}
	return printPlayer(out, result.Player)
}

func runPlayerDelete(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newPlayerService(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.DeletePlayer(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted player %s\n", args[0])
	return nil
}

func printPlayer(w io.Writer, p *player.Player) error {
	mana := "none"
	if p.Mana != nil {
		mana = strconv.FormatUint(uint64(*p.Mana), 10)
	}

	status := color.New(color.FgGreen).Sprint("alive")
	if !p.IsAlive() {
		status = color.New(color.FgRed).Sprint("dead")
	}

	_, err := fmt.Fprintf(w, "  %s (%s) owner=%s health=%d mana=%s level=%d [%s]\n",
		p.Name, p.ID, p.OwnerID, p.Health, mana, p.Level, status)
	return err
}
