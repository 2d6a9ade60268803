package conf

// DefaultCapacity - Number of slots a new or reset table starts with, a prime congruent to 3 mod 4
const DefaultCapacity uint64 = 7

// HighWatermark - Fill ratio that an insert may not push the table beyond without growing it first
const HighWatermark float64 = 0.5

// LowWatermark - Fill ratio below which a delete shrinks the table, a quarter of HighWatermark
const LowWatermark float64 = HighWatermark / 4

// GrowthFactor - Multiplier applied to the capacity before searching for the next prime when growing
const GrowthFactor uint64 = 2

// ShrinkDivisor - Divisor applied to the capacity before searching for the next lower prime when shrinking
const ShrinkDivisor uint64 = 2

// UnlimitedCapacity - Max capacity value meaning no allocation limit is enforced
const UnlimitedCapacity uint64 = 0
