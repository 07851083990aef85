package common

import (
  "encoding/json"

  "gorm.io/datatypes"
)

func JSONMap(in interface{}) datatypes.JSONMap {
  buf, _ := json.Marshal(in)
  var out datatypes.JSONMap
  json.Unmarshal(buf, &out)
  return out
}

func FromJSONMap(in datatypes.JSONMap, out interface{}) error {
  buf, err := json.Marshal(in)
  if err != nil {
    return err
  }
  return json.Unmarshal(buf, out)
}

func JSON(in interface{}) datatypes.JSON {
  buf, _ := json.Marshal(in)
  return datatypes.JSON(buf)
}

func FromJSON(in datatypes.JSON, out interface{}) error {
  if len(in) == 0 {
    return nil
  }
  return json.Unmarshal(in, out)
}
