package cli

// CollectAll exposes collectAll for testing purposes
var CollectAll = collectAll

// RunScenario exposes runScenario for testing purposes
var RunScenario = runScenario
