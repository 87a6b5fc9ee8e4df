package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/roadmap-backend/internal/app"
	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

var generateReq types.LearningGoalRequest

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one roadmap and print it as JSON",
	Long: `Generate one roadmap without starting the HTTP server. Uses the generation
service when OPENROUTER_API_KEY is set, otherwise the default structure.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateReq.Goal, "goal", "", "learning goal (required)")
	f.StringVar(&generateReq.Proficiency, "proficiency", "beginner", "current proficiency")
	f.StringVar(&generateReq.TimeCommitment, "time", "10 hours/week", "time commitment")
	f.StringSliceVar(&generateReq.LearningStyle, "style", []string{"hands-on"}, "learning styles")
	f.StringVar(&generateReq.SpecificInterests, "interests", "", "specific interests")
	f.StringVar(&generateReq.Challenges, "challenges", "", "known challenges")
	_ = generateCmd.MarkFlagRequired("goal")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx, logger.NewNop())
	if err != nil {
		return err
	}
	defer a.Close()

	plan, err := a.Services.Roadmaps.Generate(ctx, generateReq)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("encode roadmap: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
