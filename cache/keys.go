package cache

import "time"

// Per-user address hashes expire; filter and form-field entries live until
// they are explicitly recomputed.
const AddressTTL = 10 * 24 * time.Hour

func CartKey(userID string) string { return "cart#" + userID }

func FavoriteKey(userID string) string { return "favorite#" + userID }

func AddressKey(userID string) string { return "address#" + userID }

func FilterKey(category string) string { return "filter#" + category }

func FormFieldKey(category string) string { return "formField#" + category }
