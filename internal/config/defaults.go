package config

// DefaultConfigYAML contains the default configuration scaffold written by
// `debate init`. Values not specified use the loader defaults.
const DefaultConfigYAML = `# debate-ai configuration
#
# API keys are read from the environment variables named below, never from
# this file.

log:
  level: info     # debug, info, warn, error
  format: auto    # auto, text, json

debate:
  # Default round limit and budget; both can be overridden per debate.
  round_limit: 3
  budget_usd: 1.0
  strategy: debate

consensus:
  # Agreement score at or above which the panel is considered resolved.
  threshold: 0.85
  # External semantic scorer. Comment out to force the lexical fallback.
  scorer_command: ["python3", "scripts/smart_consensus.py"]
  scorer_timeout: 30s

participants:
  claude:
    enabled: true
    model: claude-sonnet-4-20250514
    api_key_env: ANTHROPIC_API_KEY
    max_tokens: 4096
    temperature: 0.7

  gpt:
    enabled: true
    model: gpt-4o
    api_key_env: OPENAI_API_KEY
    max_tokens: 4096
    temperature: 0.7

  gemini:
    enabled: true
    model: gemini-2.5-flash
    api_key_env: GEMINI_API_KEY
    max_tokens: 4096
    temperature: 0.7

server:
  addr: 127.0.0.1:8385
`
