package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/debate-ai/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and environment",
	Long: `Verify that the configuration loads, the participant API keys are set,
and the semantic scorer command is on the PATH.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	fmt.Println("Checking configuration...")
	fmt.Println()

	loader := config.NewLoader()
	if cfgFile != "" {
		loader = loader.WithConfigFile(cfgFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		fmt.Printf("  ✗ configuration failed to load: %v\n", err)
		return fmt.Errorf("configuration check failed")
	}
	if err := config.NewValidator().Validate(cfg); err != nil {
		fmt.Printf("  ✗ configuration invalid: %v\n", err)
		return fmt.Errorf("configuration check failed")
	}
	fmt.Println("  ✓ configuration valid")
	fmt.Println()

	fmt.Println("Checking participant API keys...")
	fmt.Println()

	allOk := true
	for _, name := range []string{"claude", "gpt", "gemini"} {
		pc, _ := cfg.Participant(name)
		if !pc.Enabled {
			fmt.Printf("  ○ %s disabled\n", name)
			continue
		}
		if os.Getenv(pc.APIKeyEnv) == "" {
			fmt.Printf("  ✗ %s: %s is not set\n", name, pc.APIKeyEnv)
			allOk = false
		} else {
			fmt.Printf("  ✓ %s (%s, model %s)\n", name, pc.APIKeyEnv, pc.Model)
		}
	}
	if len(cfg.EnabledParticipants()) < 2 {
		fmt.Println("  ✗ fewer than two participants enabled, debates cannot run")
		allOk = false
	}
	fmt.Println()

	fmt.Println("Checking consensus scorer...")
	fmt.Println()
	if len(cfg.Consensus.ScorerCommand) == 0 {
		fmt.Println("  ○ no scorer command configured, lexical fallback only")
	} else if _, err := exec.LookPath(cfg.Consensus.ScorerCommand[0]); err != nil {
		fmt.Printf("  ⚠ %s not found on PATH, scoring will use the lexical fallback\n",
			cfg.Consensus.ScorerCommand[0])
	} else {
		fmt.Printf("  ✓ %s available\n", cfg.Consensus.ScorerCommand[0])
	}
	fmt.Println()

	printSystemInfo()

	if !allOk {
		return fmt.Errorf("environment check failed")
	}
	fmt.Println("Environment ready")
	return nil
}

// printSystemInfo reports host capacity. Failures here are informational
// only; missing metrics never fail the check.
func printSystemInfo() {
	fmt.Println("System:")
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("  memory: %.1f GB total, %.0f%% used\n",
			float64(vm.Total)/(1024*1024*1024), vm.UsedPercent)
	}
	if counts, err := cpu.Counts(true); err == nil {
		fmt.Printf("  cpus:   %d logical\n", counts)
	}
	fmt.Println()
}
